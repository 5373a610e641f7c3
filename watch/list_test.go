package watch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ypickup/pickup-web/backend"
	"github.com/ypickup/pickup-web/backend/mocks"
	"github.com/ypickup/pickup-web/pickup"
	"github.com/ypickup/pickup-web/watch"
	"go.uber.org/mock/gomock"
)

var (
	alice = pickup.User{ID: 1, Name: "Alice"}
	bob   = pickup.User{ID: 2, Name: "Bob"}
	carol = pickup.User{ID: 3, Name: "Carol"}
)

func intPtr(n int) *int { return &n }

func sampleGames() []pickup.Game {
	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	soccer := pickup.Sport{ID: 1, Name: "Soccer"}

	return []pickup.Game{
		{
			ID: 10, Name: "5v5 soccer", Sport: soccer, Location: "Park",
			StartTime: start, EndTime: start.Add(time.Hour),
			Creator: alice, CurrentState: pickup.StateOpen,
		},
		{
			ID: 11, Name: "6v6 soccer", Sport: soccer, Location: "Gym",
			StartTime: start.Add(24 * time.Hour), EndTime: start.Add(25 * time.Hour),
			Creator: carol, CurrentState: pickup.StateOpen, Capacity: intPtr(1),
			Participants: []pickup.Participant{{ID: 1, User: bob}},
		},
		{
			ID: 12, Name: "Evening run", Sport: pickup.Sport{ID: 2, Name: "Running"}, Location: "Track",
			StartTime: start, EndTime: start.Add(time.Hour),
			Creator: carol, CurrentState: pickup.StateInProgress,
		},
	}
}

func testOptions() watch.Options {
	return watch.Options{Interval: time.Hour, Location: time.UTC}
}

// newList primes a list as viewer bob with the sample games.
func newList(t *testing.T, gamesCalls int) (*watch.GameList, *mocks.MockAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)

	api.EXPECT().Profile(gomock.Any()).Return(pickup.Profile{ID: bob.ID, Name: bob.Name}, nil).Times(1)
	api.EXPECT().Games(gomock.Any()).Return(sampleGames(), nil).Times(gamesCalls)

	l := watch.NewGameList(api, testOptions())
	t.Cleanup(l.Stop)
	l.Prime(context.Background(), context.Background())

	return l, api
}

func TestGameList_View(t *testing.T) {
	l, _ := newList(t, 1)

	v := l.View()

	require.True(t, v.Loaded)
	require.NoError(t, v.Err)
	require.Len(t, v.Items, 3)
	assert.Equal(t, 3, v.Total)
	assert.Equal(t, bob.ID, v.Profile.ID)

	assert.Equal(t, pickup.RoleEligible, v.Items[0].Actions.Role)
	assert.True(t, v.Items[0].Actions.CanJoin)
	assert.Equal(t, pickup.RoleJoined, v.Items[1].Actions.Role)
	assert.Equal(t, pickup.RoleEligible, v.Items[2].Actions.Role)
	assert.False(t, v.Items[2].Actions.CanJoin)
	assert.Equal(t, "Sunday, June 1st at 6:00 PM", v.Items[0].Start)
	assert.Equal(t, "/assets/icons/soccer.jpg", v.Items[0].Icon)
	assert.Equal(t, "In Progress", v.Items[2].Badge.Text)

	l.SetFilter(pickup.Filter{Name: "5V5"})
	v = l.View()
	require.Len(t, v.Items, 1)
	assert.Equal(t, 10, v.Items[0].Game.ID)
	assert.Equal(t, 3, v.Total)
}

func TestGameList_FetchErrorKeepsGames(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().Profile(gomock.Any()).Return(pickup.Profile{ID: bob.ID}, nil).Times(1)
	gomock.InOrder(
		api.EXPECT().Games(gomock.Any()).Return(sampleGames(), nil),
		api.EXPECT().Games(gomock.Any()).Return(nil, errors.New("timeout")),
	)

	l := watch.NewGameList(api, testOptions())
	t.Cleanup(l.Stop)
	l.Prime(context.Background(), context.Background())

	require.Error(t, l.Refresh(context.Background()))

	v := l.View()
	assert.Len(t, v.Items, 3)
	assert.Error(t, v.Err)
}

func TestGameList_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("success refreshes", func(t *testing.T) {
		l, api := newList(t, 2)
		api.EXPECT().JoinGame(gomock.Any(), 10).Return(nil).Times(1)

		require.NoError(t, l.Join(ctx, 10))
	})

	t.Run("server rejection refreshes and reports", func(t *testing.T) {
		l, api := newList(t, 2)
		api.EXPECT().JoinGame(gomock.Any(), 10).Return(&backend.APIError{Status: 400, Message: "Game is full"}).Times(1)

		err := l.Join(ctx, 10)

		var actionErr *watch.ActionError
		require.ErrorAs(t, err, &actionErr)
		assert.Equal(t, watch.ActionJoin, actionErr.Action)
		assert.Equal(t, "Failed to join.", actionErr.Action.FailureMessage())
	})

	t.Run("game not open is rejected locally", func(t *testing.T) {
		l, api := newList(t, 1)
		api.EXPECT().JoinGame(gomock.Any(), gomock.Any()).Times(0)

		err := l.Join(ctx, 12)

		require.ErrorIs(t, err, pickup.ErrInvalidGameState)
	})

	t.Run("already joined is rejected locally", func(t *testing.T) {
		l, api := newList(t, 1)
		api.EXPECT().JoinGame(gomock.Any(), gomock.Any()).Times(0)

		require.ErrorIs(t, l.Join(ctx, 11), pickup.ErrNotAllowed)
	})

	t.Run("unknown game goes to the server", func(t *testing.T) {
		l, api := newList(t, 2)
		api.EXPECT().JoinGame(gomock.Any(), 99).Return(backend.ErrNotFound).Times(1)

		require.ErrorIs(t, l.Join(ctx, 99), backend.ErrNotFound)
	})
}

func TestGameList_Leave(t *testing.T) {
	ctx := context.Background()
	l, api := newList(t, 2)
	api.EXPECT().LeaveGame(gomock.Any(), 11).Return(nil).Times(1)

	require.ErrorIs(t, l.Leave(ctx, 10), pickup.ErrNotAllowed)
	require.NoError(t, l.Leave(ctx, 11))
}

func TestGameList_CancelAndDeleteNeedCreator(t *testing.T) {
	ctx := context.Background()
	l, api := newList(t, 1)
	api.EXPECT().CancelGame(gomock.Any(), gomock.Any()).Times(0)
	api.EXPECT().DeleteGame(gomock.Any(), gomock.Any()).Times(0)

	require.ErrorIs(t, l.Cancel(ctx, 10), pickup.ErrNotAllowed)
	require.ErrorIs(t, l.Delete(ctx, 10), pickup.ErrNotAllowed)
}

func TestGameList_RepeatedActionWhilePending(t *testing.T) {
	ctx := context.Background()
	l, api := newList(t, 2)

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().JoinGame(gomock.Any(), 10).DoAndReturn(func(context.Context, int) error {
		close(entered)
		<-release
		return nil
	}).Times(1)

	done := make(chan error, 1)
	go func() { done <- l.Join(ctx, 10) }()
	<-entered

	require.ErrorIs(t, l.Join(ctx, 10), watch.ErrActionInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestGameList_Participants(t *testing.T) {
	ctx := context.Background()
	l, api := newList(t, 1)

	api.EXPECT().SearchUsers(gomock.Any(), "bo").Return([]pickup.User{bob}, nil).Times(1)

	users, err := l.SearchParticipants(ctx, "bo")
	require.NoError(t, err)
	assert.Equal(t, []pickup.User{bob}, users)
	assert.Equal(t, []pickup.User{bob}, l.View().Suggestions)

	l.PinParticipant(bob)
	v := l.View()
	assert.Equal(t, bob.ID, v.Filter.UserID)
	assert.Equal(t, "Bob", v.ParticipantQuery)
	assert.Empty(t, v.Suggestions)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 11, v.Items[0].Game.ID)

	l.SetFilter(pickup.Filter{Sport: "soccer"})
	assert.Equal(t, bob.ID, l.View().Filter.UserID)

	users, err = l.SearchParticipants(ctx, "  ")
	require.NoError(t, err)
	assert.Nil(t, users)

	v = l.View()
	assert.Zero(t, v.Filter.UserID)
	assert.Empty(t, v.ParticipantQuery)
	assert.Len(t, v.Items, 2)
}

func TestGameList_SearchErrorClearsSuggestions(t *testing.T) {
	l, api := newList(t, 1)
	api.EXPECT().SearchUsers(gomock.Any(), "x").Return(nil, errors.New("boom")).Times(1)

	_, err := l.SearchParticipants(context.Background(), "x")

	require.Error(t, err)
	assert.Empty(t, l.View().Suggestions)
}

func TestGameList_WarmStart(t *testing.T) {
	warm := cache.New(time.Minute, time.Minute)
	warm.SetDefault("games", sampleGames()[:1])

	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().Profile(gomock.Any()).Return(pickup.Profile{ID: bob.ID}, nil).Times(1)
	api.EXPECT().Games(gomock.Any()).Return(sampleGames(), nil).Times(1)

	opts := testOptions()
	opts.Warm = warm
	l := watch.NewGameList(api, opts)
	t.Cleanup(l.Stop)

	v := l.View()
	assert.True(t, v.Loaded)
	assert.Len(t, v.Items, 1)

	l.Prime(context.Background(), context.Background())

	assert.Len(t, l.View().Items, 3)
	cached, ok := warm.Get("games")
	require.True(t, ok)
	assert.Len(t, cached, 3)
}

func TestGameList_UnknownViewerGetsNoActions(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	api.EXPECT().Profile(gomock.Any()).Return(pickup.Profile{}, errors.New("timeout")).Times(2)
	api.EXPECT().Games(gomock.Any()).Return(sampleGames(), nil).Times(1)
	api.EXPECT().JoinGame(gomock.Any(), gomock.Any()).Times(0)

	l := watch.NewGameList(api, testOptions())
	t.Cleanup(l.Stop)
	l.Prime(ctx, ctx)

	v := l.View()
	require.True(t, v.Loaded)
	assert.Nil(t, v.Profile)
	require.Len(t, v.Items, 3)
	for _, item := range v.Items {
		assert.Equal(t, pickup.ActionSet{}, item.Actions, item.Game.Name)
	}

	err := l.Join(ctx, 10)

	require.ErrorIs(t, err, watch.ErrProfileUnavailable)
	assert.EqualError(t, err, "Failed to join. viewer profile unavailable")
}
