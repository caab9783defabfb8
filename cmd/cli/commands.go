package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	sortMode  string
	allCourts bool
	fromDate  string
	toDate    string
	dryRun    bool
)

func init() {
	membersCmd.Flags().StringVar(&sortMode, "sort", "", "Show the ranked table sorted by name, rating, games, winrate, wins or absent")
	courtsCmd.Flags().BoolVar(&allCourts, "all", false, "Include inactive courts")
	resultsCmd.Flags().StringVar(&fromDate, "from", "", "First game date to include (YYYY-MM-DD)")
	resultsCmd.Flags().StringVar(&toDate, "to", "", "Last game date to include (YYYY-MM-DD)")
	notifyCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Log the Slack message instead of posting it")

	notifyCmd.AddCommand(notifyAttendanceCmd)
	notifyCmd.AddCommand(notifyRankingCmd)

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(courtsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(attendanceCmd)
	rootCmd.AddCommand(ratingLogicCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", nil)
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List the club members, or the ranked member table with --sort",
	RunE: func(cmd *cobra.Command, args []string) error {
		if sortMode == "" {
			return performRequest(http.MethodGet, "/members", nil)
		}
		return performRequest(http.MethodGet, "/stats/members", url.Values{"sort": {sortMode}})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Find members by approximate name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/members/search", url.Values{"q": {args[0]}})
	},
}

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List the courts",
	RunE: func(cmd *cobra.Command, args []string) error {
		var q url.Values
		if allCourts {
			q = url.Values{"all": {"true"}}
		}
		return performRequest(http.MethodGet, "/courts", q)
	},
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List game results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if fromDate != "" {
			q.Set("from", fromDate)
		}
		if toDate != "" {
			q.Set("to", toDate)
		}
		return performRequest(http.MethodGet, "/results", q)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get the full statistics report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/stats", nil)
	},
}

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Get this month's attendance status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/stats/attendance", nil)
	},
}

var ratingLogicCmd = &cobra.Command{
	Use:   "rating-logic",
	Short: "Explain how ratings and tiers are calculated",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/stats/rating-logic", nil)
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Post club statistics to Slack",
}

var notifyAttendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Post this month's attendance status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/notify/attendance", dryRunQuery())
	},
}

var notifyRankingCmd = &cobra.Command{
	Use:   "ranking",
	Short: "Post the rating leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/notify/ranking", dryRunQuery())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", nil)
	},
}

func dryRunQuery() url.Values {
	if !dryRun {
		return nil
	}
	return url.Values{"dry_run": {"true"}}
}

func buildURL(endpoint string, query url.Values) string {
	u := host + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func performRequest(method, endpoint string, query url.Values) error {
	target := buildURL(endpoint, query)
	fmt.Printf("Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
