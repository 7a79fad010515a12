package careercenter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/smtp"
	"os"
	"strings"

	"careerwatch-backend/lib/telegram"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jordan-wright/email"
)

type MessageKind string

const (
	MessageNewEntry     MessageKind = "new entry"
	MessageChangedEntry MessageKind = "changed entry"
)

type Message struct {
	Kind   MessageKind
	Record CourseRecord
}

// Notifier delivers a detected change. Delivery is best effort and
// at most once, failures are reported but never retried.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// FormatMessage renders the seven displayed fields as "label: value"
// lines in display order. TableIndex is never shown.
func FormatMessage(record CourseRecord) string {
	fields := record.displayFields()
	var out strings.Builder
	for i, label := range displayLabels {
		out.WriteString(label)
		out.WriteString(": ")
		out.WriteString(*fields[i])
		out.WriteString("\n")
	}
	return out.String()
}

// TelegramNotifier pushes messages to a chat or channel with markdown
// emphasis intact.
type TelegramNotifier struct {
	Client *telegram.Client
	ChatId string
}

func (n TelegramNotifier) Notify(ctx context.Context, msg Message) error {
	return n.Client.SendMessage(ctx, telegram.SendMessageRequest{
		ChatId:    n.ChatId,
		Text:      FormatMessage(msg.Record),
		ParseMode: "Markdown",
	})
}

type SmtpConfig struct {
	Server       string   `json:"server"`
	Port         int      `json:"port"`
	EmailAddress string   `json:"email_address"`
	Password     string   `json:"password"`
	To           []string `json:"to"`
}

type EmailNotifier struct {
	Smtp SmtpConfig
}

func (n EmailNotifier) Notify(ctx context.Context, msg Message) error {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Career Center Watch <%s>", n.Smtp.EmailAddress)
	mail.To = n.Smtp.To
	mail.Subject = fmt.Sprintf("Career Center: %s", msg.Kind)
	mail.Text = []byte(FormatMessage(msg.Record))

	err := mail.Send(
		fmt.Sprintf("%s:%d", n.Smtp.Server, n.Smtp.Port),
		smtp.PlainAuth("", n.Smtp.EmailAddress, n.Smtp.Password, n.Smtp.Server),
	)
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		return mail.Send(fmt.Sprintf("%s:%d", n.Smtp.Server, n.Smtp.Port), nil)
	}
	return err
}

// ConsoleNotifier renders the record as a two-column table on stdout.
type ConsoleNotifier struct {
	Out io.Writer
}

func (n ConsoleNotifier) Notify(ctx context.Context, msg Message) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	t.SetTitle(string(msg.Kind))

	fields := msg.Record.displayFields()
	for i, label := range displayLabels {
		t.AppendRow(table.Row{label, *fields[i]})
	}
	t.Render()
	return nil
}

// MultiNotifier fans a message out to every transport, collecting the
// failures without short-circuiting.
type MultiNotifier []Notifier

func (n MultiNotifier) Notify(ctx context.Context, msg Message) error {
	var errlist []error
	for _, notifier := range n {
		if err := notifier.Notify(ctx, msg); err != nil {
			errlist = append(errlist, err)
		}
	}
	return errors.Join(errlist...)
}
