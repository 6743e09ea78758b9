package models

// Role is the part a player currently plays in the pursuit
type Role string

const (
	// RoleRunner is the single player being chased
	RoleRunner Role = "Runner"

	// RoleChaser is one of the two players trying to tag the runner
	RoleChaser Role = "Chaser"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleRunner || r == RoleChaser
}

// Opposing returns the role on the other team
func (r Role) Opposing() Role {
	if r == RoleRunner {
		return RoleChaser
	}
	return RoleRunner
}

// Audience returns the notification audience made up of players with this role
func (r Role) Audience() Audience {
	if r == RoleRunner {
		return AudienceRunners
	}
	return AudienceChasers
}
