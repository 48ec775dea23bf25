package person

// occupation bands
const (
	AdultAge      = 18
	RetirementAge = 67

	JobChild   = "Child"
	JobRetired = "Retired"
)

// Providers are the email domains a generated address may use.
var Providers = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"hotmail.com",
	"aol.com",
	"icloud.com",
	"protonmail.com",
	"fastmail.com",
}
