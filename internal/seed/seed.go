// Package seed はHCLで書かれた初期データをレジストリに投入する
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/domain/event"
	"github.com/sanosuguru/go-event-calendar/internal/domain/person"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/logger"
)

// File はシードファイルの内容
type File struct {
	Persons []*PersonBlock `hcl:"person,block"`
	Events  []*EventBlock  `hcl:"event,block"`
}

// PersonBlock は person "key" { ... } ブロック
// key はファイル内で人物を参照するための名前で、レジストリには保存しない
type PersonBlock struct {
	Key         string `hcl:"key,label"`
	LastName    string `hcl:"last_name"`
	FirstName   string `hcl:"first_name"`
	MailAddress string `hcl:"mail_address,optional"`
	PhoneNumber string `hcl:"phone_number,optional"`
}

// EventBlock は event "title" { ... } ブロック
type EventBlock struct {
	Title           string   `hcl:"title,label"`
	Organizer       string   `hcl:"organizer"`
	DateTime        string   `hcl:"date_time"`
	MaxParticipants int      `hcl:"max_participants,optional"`
	Participants    []string `hcl:"participants,optional"`
}

// Registry はシード投入に使うレジストリ操作
type Registry interface {
	CreatePerson(ctx context.Context, input application.CreatePersonInput) (*person.Person, error)
	CreateEvent(ctx context.Context, input application.CreateEventInput) (*event.Event, error)
	RegisterPersonForEvent(ctx context.Context, personID, eventID string) error
}

// Result は投入した件数
type Result struct {
	Persons       int
	Events        int
	Registrations int
}

// Parse はHCLのソースをデコードする
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("シードファイル %s の解析に失敗: %w", filename, diags)
	}
	return decode(hclFile.Body, filename)
}

// LoadFile はシードファイルを読み込んでデコードする
func LoadFile(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("シードファイル %s の解析に失敗: %w", path, diags)
	}
	return decode(hclFile.Body, path)
}

func decode(body hcl.Body, filename string) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("シードファイル %s のデコードに失敗: %w", filename, diags)
	}
	return &f, nil
}

// Apply はシードの内容をレジストリの操作で投入する
// 人物、イベント、参加登録の順に投入し、最初のエラーで中断する
func Apply(ctx context.Context, reg Registry, f *File) (*Result, error) {
	result := &Result{}
	ids := make(map[string]string, len(f.Persons))

	for _, pb := range f.Persons {
		if _, ok := ids[pb.Key]; ok {
			return result, fmt.Errorf("人物 %q が重複しています", pb.Key)
		}
		p, err := reg.CreatePerson(ctx, application.CreatePersonInput{
			LastName:    pb.LastName,
			FirstName:   pb.FirstName,
			MailAddress: pb.MailAddress,
			PhoneNumber: pb.PhoneNumber,
		})
		if err != nil {
			return result, fmt.Errorf("人物 %q の作成に失敗: %w", pb.Key, err)
		}
		ids[pb.Key] = p.ID
		result.Persons++
	}

	for _, eb := range f.Events {
		organizerID, ok := ids[eb.Organizer]
		if !ok {
			return result, fmt.Errorf("イベント %q の主催者 %q が定義されていません", eb.Title, eb.Organizer)
		}
		dateTime, err := time.Parse(time.RFC3339, eb.DateTime)
		if err != nil {
			return result, fmt.Errorf("イベント %q の開催日時が不正: %w", eb.Title, err)
		}

		e, err := reg.CreateEvent(ctx, application.CreateEventInput{
			OrganizerID:     organizerID,
			Title:           eb.Title,
			DateTime:        dateTime,
			MaxParticipants: eb.MaxParticipants,
		})
		if err != nil {
			return result, fmt.Errorf("イベント %q の作成に失敗: %w", eb.Title, err)
		}
		result.Events++

		for _, key := range eb.Participants {
			personID, ok := ids[key]
			if !ok {
				return result, fmt.Errorf("イベント %q の参加者 %q が定義されていません", eb.Title, key)
			}
			if err := reg.RegisterPersonForEvent(ctx, personID, e.ID); err != nil {
				return result, fmt.Errorf("イベント %q への %q の参加登録に失敗: %w", eb.Title, key, err)
			}
			result.Registrations++
		}
	}

	logger.Info("シードを投入しました",
		zap.Int("persons", result.Persons),
		zap.Int("events", result.Events),
		zap.Int("registrations", result.Registrations),
	)
	return result, nil
}
