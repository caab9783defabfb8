package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pickle-club/internal/club"
	"github.com/mauv0809/pickle-club/internal/config"
	"github.com/mauv0809/pickle-club/internal/database"
)

const (
	numMembers = 40
	numDays    = 90
	// Chance that a member shows up on a given club day.
	attendanceRate = 0.3
)

var (
	familyNames  = []string{"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임"}
	givenNames   = []string{"민수", "서연", "지훈", "하은", "도윤", "수아", "예준", "지우", "시우", "유나"}
	departments  = []string{"개발팀", "영업팀", "인사팀", "재무팀", ""}
	seededCourts = []string{"A코트", "B코트", "C코트"}
)

func main() {
	log.Info("Starting database seeder...")
	cfg := config.Load()

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := club.New(db)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	startTime := time.Now()

	members := make([]*club.Member, 0, numMembers)
	for i := 0; i < numMembers; i++ {
		name := familyNames[rng.Intn(len(familyNames))] + givenNames[rng.Intn(len(givenNames))]
		m, err := store.CreateMember(ctx, club.MemberInput{
			Name:       fmt.Sprintf("%s%d", name, i+1),
			Department: departments[rng.Intn(len(departments))],
		})
		if err != nil {
			log.Fatalf("Failed to insert member %s: %s", name, err)
		}
		members = append(members, m)
	}
	log.Info("Inserted members", "count", len(members))

	courts := make([]*club.Court, 0, len(seededCourts))
	for _, name := range seededCourts {
		c, err := store.CreateCourt(ctx, club.CourtInput{Name: name})
		if err != nil {
			log.Fatalf("Failed to insert court %s: %s", name, err)
		}
		courts = append(courts, c)
	}
	log.Info("Inserted courts", "count", len(courts))

	today := club.CivilDate(time.Now().In(cfg.Stats.Location))
	results := 0
	for d := 0; d < numDays; d++ {
		date := today.AddDate(0, 0, -d)
		court := courts[rng.Intn(len(courts))]
		for _, m := range members {
			if rng.Float64() >= attendanceRate {
				continue
			}
			games := 1 + rng.Intn(6)
			wins := rng.Intn(games + 1)
			err := store.UpsertGameResult(ctx, club.ResultInput{
				MemberID: m.ID,
				CourtID:  court.ID,
				GameDate: date,
				Wins:     wins,
				Losses:   games - wins,
			})
			if err != nil {
				log.Fatalf("Failed to insert game result: %s", err)
			}
			results++
		}
	}

	log.Info("Successfully seeded club data.", "results", results, "duration", time.Since(startTime))
}
