package models

type LeaveType string

const (
	LeaveTypeAnnual   LeaveType = "ANNUAL"
	LeaveTypeSick     LeaveType = "SICK"
	LeaveTypePersonal LeaveType = "PERSONAL"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypePersonal:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

type AchievementKind string

const (
	AchievementKindStar   AchievementKind = "STAR"
	AchievementKindChef   AchievementKind = "CHEF"
	AchievementKindDamage AchievementKind = "X"
)

// AchievementKinds lists every kind in report column order.
var AchievementKinds = []AchievementKind{
	AchievementKindStar,
	AchievementKindChef,
	AchievementKindDamage,
}

func (k AchievementKind) IsValid() bool {
	switch k {
	case AchievementKindStar, AchievementKindChef, AchievementKindDamage:
		return true
	}
	return false
}

var achievementKindHumanName = map[AchievementKind]string{
	AchievementKindStar:   "Star of the day",
	AchievementKindChef:   "Chef of the day",
	AchievementKindDamage: "Damage",
}

func (k AchievementKind) ToHuman() string {
	if human, exist := achievementKindHumanName[k]; exist {
		return human
	}
	return string(k)
}
