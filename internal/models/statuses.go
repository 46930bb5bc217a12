package models

type UserRole string
type BookingStatus string
type BillingCycle string

const (
	UserRoleMember       UserRole = "member"
	UserRoleTrainer      UserRole = "trainer"
	UserRoleAdmin        UserRole = "admin"
	UserRoleNutritionist UserRole = "nutritionist"

	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusAttended  BookingStatus = "attended"

	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

// IsValid - роль из закрытого списка
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMember, UserRoleTrainer, UserRoleAdmin, UserRoleNutritionist:
		return true
	}
	return false
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusAttended:
		return true
	}
	return false
}

func (b BillingCycle) IsValid() bool {
	return b == BillingCycleMonthly || b == BillingCycleYearly
}
