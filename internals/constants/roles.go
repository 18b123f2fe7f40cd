package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleMember  = "member"
	RoleTrainer = "trainer"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "❌ Only admin may access %s."
	ErrOnlyMembersCanAccess  = "❌ Only members may access %s."
	ErrOnlyTrainersCanAccess = "❌ Only trainers may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMembersCanAccess, feature)
}

func RoleErrorTrainer(feature string) string {
	return fmt.Sprintf(ErrOnlyTrainersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleMember,
		RoleTrainer,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	MemberOnly = []string{
		RoleMember,
	}

	TrainerOnly = []string{
		RoleTrainer,
	}

	TrainerOrAdmin = []string{
		RoleTrainer,
		RoleAdmin,
	}
)
