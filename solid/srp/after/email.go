package after

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNoRecipient is returned when Send is given a blank address.
	ErrNoRecipient = errors.New("email sender: empty recipient")

	// ErrNoOutput is returned when the sender has nowhere to write.
	ErrNoOutput = errors.New("email sender: no output writer")
)

// EmailSender "sends" messages by printing them to Out.
type EmailSender struct {
	Out io.Writer
}

// NewEmailSender returns a sender that prints every message to out.
func NewEmailSender(out io.Writer) EmailSender {
	return EmailSender{Out: out}
}

// Send prints "Sending message to <email>: <message>". A blank address or a
// missing writer is an error; nothing is dropped silently.
func (s EmailSender) Send(email, message string) error {
	if strings.TrimSpace(email) == "" {
		return ErrNoRecipient
	}
	if s.Out == nil {
		return ErrNoOutput
	}
	_, err := fmt.Fprintf(s.Out, "Sending message to %s: %s\n", email, message)
	return err
}
