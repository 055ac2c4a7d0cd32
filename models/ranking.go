package models

// AttendanceRanking is one row of the attendance leaderboard: how many
// finished matches the player showed up to.
type AttendanceRanking struct {
	PlayerID    int    `json:"player_id" db:"player_id"`
	FirstName   string `json:"first_name" db:"first_name"`
	LastName    string `json:"last_name" db:"last_name"`
	Attendances int    `json:"attendances" db:"attendances"`
}

// WithdrawalRanking counts withdrawals regardless of match state.
type WithdrawalRanking struct {
	PlayerID    int    `json:"player_id" db:"player_id"`
	FirstName   string `json:"first_name" db:"first_name"`
	LastName    string `json:"last_name" db:"last_name"`
	Withdrawals int    `json:"withdrawals" db:"withdrawals"`
}

// WinnerRanking covers finished matches with a decided winner only. WinRate
// is victories over matches played, as a percentage rounded to 2 decimals.
type WinnerRanking struct {
	PlayerID      int     `json:"player_id" db:"player_id"`
	FirstName     string  `json:"first_name" db:"first_name"`
	LastName      string  `json:"last_name" db:"last_name"`
	MatchesPlayed int     `json:"matches_played" db:"matches_played"`
	Victories     int     `json:"victories" db:"victories"`
	WinRate       float64 `json:"winrate" db:"winrate"`
}

// StatsOverview bundles the three rankings for the dashboard landing page.
type StatsOverview struct {
	Attendance  []AttendanceRanking `json:"attendance"`
	Withdrawals []WithdrawalRanking `json:"withdrawals"`
	Winners     []WinnerRanking     `json:"winners"`
}
