package contact

import (
	"context"
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		ok   bool
	}{
		{"valid", Form{Name: " Jane ", Email: "jane@example.com", Message: "hi"}, true},
		{"missing name", Form{Email: "jane@example.com", Message: "hi"}, false},
		{"missing email", Form{Name: "Jane", Message: "hi"}, false},
		{"missing message", Form{Name: "Jane", Email: "jane@example.com", Message: "   "}, false},
		{"bad email", Form{Name: "Jane", Email: "not-an-email", Message: "hi"}, false},
		{"header injection", Form{Name: "Jane\r\nBcc: x@example.com", Email: "jane@example.com", Message: "hi"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidForm)
		})
	}
}

func TestSMTPSender_NotConfigured(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587"})
	err := s.Send(context.Background(), Form{Name: "Jane", Email: "jane@example.com", Message: "hi"})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMTPSender_Sends(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587", User: "me@example.com", Password: "pw", To: "owner@example.com"})
	s.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := s.Send(context.Background(), Form{Name: "Jane", Email: "jane@example.com", Message: "hello there"})
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "me@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Portfolio Contact: Jane\r\n")
	assert.Contains(t, string(gotMsg), "Reply-To: jane@example.com\r\n")
	assert.Contains(t, string(gotMsg), "hello there")
}

func TestSMTPSender_WrapsTransportError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSMTPSender(SMTPConfig{User: "me@example.com", Password: "pw"})
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return boom }

	err := s.Send(context.Background(), Form{Name: "Jane", Email: "jane@example.com", Message: "hi"})
	require.ErrorIs(t, err, boom)
}

func TestSMTPSender_DelayHonoursContext(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{User: "me@example.com", Password: "pw", Delay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Send(ctx, Form{Name: "Jane", Email: "jane@example.com", Message: "hi"})
	require.ErrorIs(t, err, context.Canceled)
}
