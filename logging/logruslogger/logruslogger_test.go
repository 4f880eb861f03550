package logruslogger

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/awslabs/record-go/logging"
)

func TestLogf(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)

	New(l).WithFields(logrus.Fields{"shape": "test#Widget"}).
		Logf(logging.Debug, "dropping unknown field %q", "Color")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatalf("expect entry")
	}
	if e, a := logrus.DebugLevel, entry.Level; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := `dropping unknown field "Color"`, entry.Message; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "record", entry.Data["component"]; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "test#Widget", entry.Data["shape"]; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestLevels(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	hook := test.NewLocal(l)

	logger := New(l)
	logger.Logf(logging.Debug, "hidden")
	logger.Logf(logging.Warn, "shown")

	entries := hook.AllEntries()
	if e, a := 1, len(entries); e != a {
		t.Fatalf("expect %v entries, got %v", e, a)
	}
	if e, a := logrus.WarnLevel, entries[0].Level; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
