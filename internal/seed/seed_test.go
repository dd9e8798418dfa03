package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/apperr"
)

const validSeed = `
person "ada" {
  last_name    = "Lovelace"
  first_name   = "Ada"
  mail_address = "ada@example.com"
}

person "charles" {
  last_name  = "Babbage"
  first_name = "Charles"
}

event "Analytical Engine Meetup" {
  organizer        = "ada"
  date_time        = "2099-01-01T18:00:00Z"
  max_participants = 2
  participants     = ["charles", "ada"]
}

event "Difference Engine Workshop" {
  organizer    = "charles"
  date_time    = "2099-02-01T18:00:00Z"
  participants = ["charles"]
}
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(validSeed), "seed.hcl")
	require.NoError(t, err)

	require.Len(t, f.Persons, 2)
	assert.Equal(t, "ada", f.Persons[0].Key)
	assert.Equal(t, "ada@example.com", f.Persons[0].MailAddress)
	assert.Empty(t, f.Persons[1].MailAddress)

	require.Len(t, f.Events, 2)
	assert.Equal(t, "Analytical Engine Meetup", f.Events[0].Title)
	assert.Equal(t, 2, f.Events[0].MaxParticipants)
	assert.Equal(t, []string{"charles", "ada"}, f.Events[0].Participants)
	assert.Zero(t, f.Events[1].MaxParticipants)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "構文エラー", src: `person "ada" {`},
		{name: "必須属性なし", src: `person "ada" { last_name = "Lovelace" }`},
		{name: "未知のブロック", src: `venue "hall" {}`},
		{name: "定員が文字列", src: `event "x" {
  organizer        = "ada"
  date_time        = "2099-01-01T00:00:00Z"
  max_participants = "many"
}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "seed.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.hcl")
	require.NoError(t, os.WriteFile(path, []byte(validSeed), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Events, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	f, err := Parse([]byte(validSeed), "seed.hcl")
	require.NoError(t, err)

	reg := application.NewRegistryService(nil, nil, nil)
	result, err := Apply(ctx, reg, f)
	require.NoError(t, err)
	assert.Equal(t, &Result{Persons: 2, Events: 2, Registrations: 3}, result)

	meetup, err := reg.GetEvent(ctx, "Analytical Engine Meetup")
	require.NoError(t, err)
	require.NotNil(t, meetup)
	assert.Equal(t, 2, meetup.ParticipantCount())

	participants, err := reg.GetParticipantsForEvent(ctx, meetup.ID)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	// Babbage は2件、Lovelace は1件
	assert.Equal(t, "Babbage", participants[0].LastName)
	assert.Equal(t, "Lovelace", participants[1].LastName)
}

func TestApply_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("未定義の主催者", func(t *testing.T) {
		f := &File{
			Events: []*EventBlock{{Title: "x", Organizer: "nobody", DateTime: "2099-01-01T00:00:00Z"}},
		}
		_, err := Apply(ctx, application.NewRegistryService(nil, nil, nil), f)
		assert.ErrorContains(t, err, "nobody")
	})

	t.Run("重複した人物キー", func(t *testing.T) {
		f := &File{Persons: []*PersonBlock{
			{Key: "ada", LastName: "Lovelace", FirstName: "Ada"},
			{Key: "ada", LastName: "Lovelace", FirstName: "Ada"},
		}}
		result, err := Apply(ctx, application.NewRegistryService(nil, nil, nil), f)
		assert.Error(t, err)
		assert.Equal(t, 1, result.Persons)
	})

	t.Run("定員を超える参加者はレジストリのルールで拒否される", func(t *testing.T) {
		f := &File{
			Persons: []*PersonBlock{
				{Key: "a", LastName: "A", FirstName: "A"},
				{Key: "b", LastName: "B", FirstName: "B"},
			},
			Events: []*EventBlock{{
				Title: "small", Organizer: "a", DateTime: "2099-01-01T00:00:00Z",
				MaxParticipants: 1, Participants: []string{"a", "b"},
			}},
		}
		_, err := Apply(ctx, application.NewRegistryService(nil, nil, nil), f)
		assert.ErrorIs(t, err, event.ErrEventFull)
		assert.ErrorIs(t, err, apperr.ErrNotAllowed)
	})

	t.Run("過去の開催日時は拒否される", func(t *testing.T) {
		f := &File{
			Persons: []*PersonBlock{{Key: "a", LastName: "A", FirstName: "A"}},
			Events:  []*EventBlock{{Title: "old", Organizer: "a", DateTime: "2000-01-01T00:00:00Z"}},
		}
		_, err := Apply(ctx, application.NewRegistryService(nil, nil, nil), f)
		assert.ErrorIs(t, err, event.ErrDateTimeNotInFuture)
	})

	t.Run("開催日時の形式が不正", func(t *testing.T) {
		f := &File{
			Persons: []*PersonBlock{{Key: "a", LastName: "A", FirstName: "A"}},
			Events:  []*EventBlock{{Title: "bad", Organizer: "a", DateTime: "tomorrow"}},
		}
		_, err := Apply(ctx, application.NewRegistryService(nil, nil, nil), f)
		assert.ErrorContains(t, err, "bad")
	})
}
