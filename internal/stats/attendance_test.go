package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func statsWithAbsence(present, absent int) map[string]MemberStats {
	out := make(map[string]MemberStats, present+absent)
	for i := 0; i < present; i++ {
		out[fmt.Sprintf("p%d", i)] = MemberStats{ThisMonthParticipation: 1}
	}
	for i := 0; i < absent; i++ {
		out[fmt.Sprintf("a%d", i)] = MemberStats{AbsentThisMonth: true}
	}
	return out
}

func TestEvaluateAttendance(t *testing.T) {
	got := EvaluateAttendance(statsWithAbsence(22, 5), DefaultQuota)
	assert.Equal(t, 27, got.TotalMembers)
	assert.Equal(t, 22, got.Attended)
	assert.Equal(t, 5, got.Absent)
	assert.Equal(t, 8, got.Shortfall)
	assert.Equal(t, "이번달 30명이 참석을 해야 하는데 현재 22명이 참석을 해서 8명이 부족합니다.", got.Message)
}

func TestEvaluateAttendance_QuotaMet(t *testing.T) {
	got := EvaluateAttendance(statsWithAbsence(35, 0), DefaultQuota)
	assert.Equal(t, 0, got.Shortfall)
}

func TestEvaluateAttendance_Empty(t *testing.T) {
	got := EvaluateAttendance(nil, 10)
	assert.Equal(t, 0, got.TotalMembers)
	assert.Equal(t, 10, got.Shortfall)
}
