package services_test

import (
	"testing"

	"github.com/Seokzzoo/bonoclicker/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLeaderboardService(db *gorm.DB, topLimit int) *services.LeaderboardService {
	return services.NewLeaderboardService(db, kst, topLimit)
}

func seedPlays(t *testing.T, db *gorm.DB) (*services.AuthService, *services.GameService) {
	t.Helper()

	auth := newAuthService(db)
	game := newGameService(db, auth)

	plays := []struct {
		nickname   string
		uuid       string
		clicks     int
		durationMs int
	}{
		{"Alice", "u1", 50, 10000},
		{"Bob", "u2", 120, 10000},
		{"Carol", "u3", 80, 10000},
		{"Mallory", "u4", 90, 25000}, // invalid, excluded from aggregates
	}
	for _, p := range plays {
		user := createUser(t, auth, p.nickname, p.uuid)
		_, err := game.Submit(user.ID, user.Team, "sess-"+p.uuid, p.clicks, p.durationMs)
		require.NoError(t, err)
	}
	return auth, game
}

func TestDaily_OrdersUsersByClicksDesc(t *testing.T) {
	db := newTestDB(t)
	seedPlays(t, db)
	lb := newLeaderboardService(db, 20)

	board, err := lb.Daily(lb.Today())
	require.NoError(t, err)

	require.Len(t, board.Users, 4)
	assert.Equal(t, "Bob", board.Users[0].Nickname)
	assert.Equal(t, int64(120), board.Users[0].Clicks)
	assert.Equal(t, "Carol", board.Users[1].Nickname)
	assert.Equal(t, "Alice", board.Users[2].Nickname)
	// Invalid play snapshots as zero but still appears.
	assert.Equal(t, "Mallory", board.Users[3].Nickname)
	assert.Equal(t, int64(0), board.Users[3].Clicks)
}

func TestDaily_RespectsTopLimit(t *testing.T) {
	db := newTestDB(t)
	seedPlays(t, db)
	lb := newLeaderboardService(db, 2)

	board, err := lb.Daily(lb.Today())
	require.NoError(t, err)

	require.Len(t, board.Users, 2)
	assert.Equal(t, "Bob", board.Users[0].Nickname)
	assert.Equal(t, "Carol", board.Users[1].Nickname)
}

func TestDaily_TeamTotalsMatchValidContributions(t *testing.T) {
	db := newTestDB(t)
	auth, _ := seedPlays(t, db)
	lb := newLeaderboardService(db, 20)

	board, err := lb.Daily(lb.Today())
	require.NoError(t, err)

	totals := map[string]int64{}
	for _, entry := range board.Teams {
		totals[entry.Team] = entry.Clicks
	}

	expected := map[string]int64{}
	expected[auth.AssignTeam("u1")] += 50
	expected[auth.AssignTeam("u2")] += 120
	expected[auth.AssignTeam("u3")] += 80
	// u4's play was invalid; its team row exists with zero contribution.

	for team, clicks := range expected {
		assert.Equal(t, clicks, totals[team], "team %s", team)
	}
}

func TestDaily_EmptyDayReturnsEmptyBoard(t *testing.T) {
	db := newTestDB(t)
	lb := newLeaderboardService(db, 20)

	board, err := lb.Daily("2000-01-01")
	require.NoError(t, err)
	assert.Empty(t, board.Users)
	assert.Empty(t, board.Teams)
}

func TestWeekly_SumsValidPlaysOnly(t *testing.T) {
	db := newTestDB(t)
	seedPlays(t, db)
	lb := newLeaderboardService(db, 20)

	board, err := lb.Weekly()
	require.NoError(t, err)

	// Mallory's invalid play must not appear in weekly sums at all.
	require.Len(t, board.Users, 3)
	assert.Equal(t, "Bob", board.Users[0].Nickname)
	assert.Equal(t, int64(120), board.Users[0].Clicks)

	var teamSum int64
	for _, entry := range board.Teams {
		teamSum += entry.Clicks
	}
	assert.Equal(t, int64(250), teamSum)
}
