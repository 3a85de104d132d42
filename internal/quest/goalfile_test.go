package quest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGoalFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goal.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGoalFile(t *testing.T) {
	path := writeGoalFile(t, `
title: Backend fundamentals
user: alice
duration: ongoing
daily_minutes: 45
quests:
  - title: HTTP handlers
    topic: net/http request handling
    stages:
      - level: reproduce
        capability: Write a handler that echoes the request body
        artifact: echo handler
      - level: modify
        capability: Add query parameter handling to an existing handler
        artifact: extended handler
  - title: Database access
    topic: SQL queries from Go
`)

	g, quests, stages, err := LoadGoalFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Backend fundamentals", g.Title)
	assert.Equal(t, "alice", g.UserID)
	assert.Equal(t, DurationOngoing, g.Duration)
	assert.Equal(t, 45, g.DailyMinutesBudget)

	require.Len(t, quests, 2)
	assert.Equal(t, g.ID, quests[0].GoalID)
	assert.Equal(t, 0, quests[0].OrderIndex)
	assert.Equal(t, 1, quests[1].OrderIndex)
	assert.Equal(t, []string{quests[0].ID, quests[1].ID}, g.QuestIDs)

	require.Len(t, stages[quests[0].ID], 2)
	assert.Equal(t, LevelReproduce, stages[quests[0].ID][0].Level)
	assert.Empty(t, stages[quests[1].ID])
}

func TestLoadGoalFileDefaults(t *testing.T) {
	path := writeGoalFile(t, `
title: Learn Rust
quests:
  - title: Ownership
`)

	g, _, _, err := LoadGoalFile(path)
	require.NoError(t, err)

	assert.Equal(t, "local", g.UserID)
	assert.Equal(t, DurationFixed, g.Duration)
	assert.Equal(t, DefaultDailyMinutes, g.DailyMinutesBudget)
}

func TestLoadGoalFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing title",
			content: "quests:\n  - title: Ownership\n",
			wantErr: "title is required",
		},
		{
			name:    "no quests",
			content: "title: Learn Rust\n",
			wantErr: "at least one quest",
		},
		{
			name:    "bad duration",
			content: "title: Learn Rust\nduration: forever\nquests:\n  - title: Ownership\n",
			wantErr: "duration must be",
		},
		{
			name:    "quest without title",
			content: "title: Learn Rust\nquests:\n  - topic: borrow checker\n",
			wantErr: "has no title",
		},
		{
			name: "unknown stage level",
			content: `title: Learn Rust
quests:
  - title: Ownership
    stages:
      - level: master
        capability: something
        artifact: something
`,
			wantErr: "unknown stage level",
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "parse goal file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeGoalFile(t, tt.content)
			_, _, _, err := LoadGoalFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadGoalFileMissing(t *testing.T) {
	_, _, _, err := LoadGoalFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read goal file")
}
