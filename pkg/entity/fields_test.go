package entity_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/lifeos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFocusDecoding(t *testing.T) {
	cases := map[string]entity.Focus{
		`7`:      7,
		`"8"`:    8,
		`"7.5"`:  7,
		`"9/10"`: 9,
		`"high"`: 0,
		`""`:     0,
		`null`:   0,
		`-3`:     -3,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			var e entity.LogEntry
			require.NoError(t, sonic.ConfigStd.Unmarshal([]byte(`{"focus":`+raw+`}`), &e))
			assert.Equal(t, want, e.Focus)
		})
	}
	assert.Equal(t, entity.Focus(6), entity.ParseFocus(" 6 "))
}

func TestWastedTimeDecoding(t *testing.T) {
	var e entity.LogEntry
	require.NoError(t, sonic.ConfigStd.Unmarshal([]byte(`{"wastedTime":3}`), &e))
	assert.Equal(t, entity.WastedTime("3"), e.WastedTime)
	assert.True(t, e.WastedTime.Valid())

	require.NoError(t, sonic.ConfigStd.Unmarshal([]byte(`{"wastedTime":"5+"}`), &e))
	assert.Equal(t, entity.WastedTime("5+"), e.WastedTime)
	assert.True(t, e.WastedTime.Valid())

	assert.False(t, entity.WastedTime("6").Valid())
	assert.False(t, entity.WastedTime("").Valid())
}

func TestFocusEncodesAsNumber(t *testing.T) {
	b, err := sonic.ConfigStd.Marshal(entity.LogEntry{Focus: 7, WastedTime: "2"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"focus":7`)
	assert.Contains(t, string(b), `"wastedTime":"2"`)
}

func TestCloneIsIndependent(t *testing.T) {
	login := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	d := entity.NewAppData()
	d.LastLogin = &login
	d.Logs = append(d.Logs, entity.LogEntry{ID: uuid.New(), Wins: "a"})
	d.Goals = append(d.Goals, entity.Goal{ID: uuid.New(), Active: true, System: entity.GoalSystem{Daily: []string{"x"}}})

	c := d.Clone()
	assert.Equal(t, d, c)

	c.Logs[0].Wins = "b"
	c.Goals[0].System.Daily[0] = "y"
	c.Goals[0].Active = false
	*c.LastLogin = login.Add(time.Hour)

	assert.Equal(t, "a", d.Logs[0].Wins)
	assert.Equal(t, "x", d.Goals[0].System.Daily[0])
	assert.True(t, d.Goals[0].Active)
	assert.Equal(t, login, *d.LastLogin)
}

func TestGoalLookups(t *testing.T) {
	inactive := entity.Goal{ID: uuid.New(), Title: "old"}
	active := entity.Goal{ID: uuid.New(), Title: "new", Active: true}
	d := entity.AppData{Goals: []entity.Goal{inactive, active}}

	g, ok := d.FirstActiveGoal()
	require.True(t, ok)
	assert.Equal(t, "new", g.Title)
	assert.Equal(t, 1, d.GoalIndex(active.ID))
	assert.Equal(t, -1, d.GoalIndex(uuid.New()))

	_, ok = entity.AppData{}.FirstActiveGoal()
	assert.False(t, ok)
}
