package stats

// DefaultQuota is the monthly attendance target of the club.
const DefaultQuota = 30

// EvaluateAttendance counts this month's attendance from the absence flags
// in statsByID and compares it with quota. The message is phrased in the
// club's default language.
func EvaluateAttendance(statsByID map[string]MemberStats, quota int) AttendanceStatus {
	status := AttendanceStatus{
		TotalMembers: len(statsByID),
		Quota:        quota,
	}
	for _, st := range statsByID {
		if st.AbsentThisMonth {
			status.Absent++
		}
	}
	status.Attended = status.TotalMembers - status.Absent
	status.Shortfall = max(0, quota-status.Attended)
	status.Message = NewFormatter(DefaultLanguage).AttendanceMessage(status)
	return status
}
