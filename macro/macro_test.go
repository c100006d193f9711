package macro

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/bendahl/uinput"

	"github.com/udonpad/action"
)

type recorder struct {
	ops    []string
	failOn string
	waited time.Duration
}

func (r *recorder) Tap(keys ...int) error {
	r.ops = append(r.ops, fmt.Sprintf("tap%v", keys))
	return nil
}

func (r *recorder) Type(text string) error {
	if r.failOn != "" && text == r.failOn {
		return errors.New("sink closed")
	}
	r.ops = append(r.ops, "type:"+text)
	return nil
}

func (r *recorder) Wait(d time.Duration) {
	r.waited += d
	r.ops = append(r.ops, "wait:"+d.String())
}

func TestComposeInline(t *testing.T) {
	for _, e := range action.Emotes() {
		seq := Compose(e, false)
		want := Sequence{Text(":"), Text(e.Token()), Text(": ")}
		if !reflect.DeepEqual(seq, want) {
			t.Errorf("Compose(%s, false) = %s, want %s", e.Token(), seq, want)
		}
	}
}

func TestComposeReaction(t *testing.T) {
	for _, e := range action.Emotes() {
		seq := Compose(e, true)
		want := Sequence{ReactionChord, Text(e.Token()), Delay(time.Second), Text("\n")}
		if !reflect.DeepEqual(seq, want) {
			t.Errorf("Compose(%s, true) = %s, want %s", e.Token(), seq, want)
		}
	}
}

func TestReactionChord(t *testing.T) {
	want := Chord{uinput.KeyLeftmeta, uinput.KeyLeftshift, uinput.KeyBackslash}
	if !reflect.DeepEqual(ReactionChord, want) {
		t.Errorf("ReactionChord = %v, want %v", ReactionChord, want)
	}
}

func TestPlayOrder(t *testing.T) {
	r := &recorder{}
	if err := Play(Compose(action.PlusOne, true), r); err != nil {
		t.Fatalf("Play: %v", err)
	}
	want := []string{
		fmt.Sprintf("tap%v", []int(ReactionChord)),
		"type:+1",
		"wait:1s",
		"type:\n",
	}
	if !reflect.DeepEqual(r.ops, want) {
		t.Errorf("ops = %q, want %q", r.ops, want)
	}
	if r.waited != ReactionDelay {
		t.Errorf("waited %v, want %v", r.waited, ReactionDelay)
	}
}

func TestPlayInlineScenario(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, ":lenny2: "},
		{9, ":sparkly: "},
	}
	for _, tt := range tests {
		e, _ := action.EmoteAt(tt.n)
		r := &recorder{}
		if err := Play(Compose(e, false), r); err != nil {
			t.Fatalf("Play: %v", err)
		}
		var typed string
		for _, op := range r.ops {
			typed += op[len("type:"):]
		}
		if typed != tt.want {
			t.Errorf("emote %d typed %q, want %q", tt.n, typed, tt.want)
		}
	}
}

func TestPlayStopsOnError(t *testing.T) {
	r := &recorder{failOn: "oof"}
	err := Play(Compose(action.Oof, false), r)
	if err == nil {
		t.Fatal("Play should fail")
	}
	if len(r.ops) != 1 {
		t.Errorf("ops after failure = %q, want only the prefix", r.ops)
	}
}

func TestSequenceString(t *testing.T) {
	got := Sequence{Text(":"), Delay(time.Second)}.String()
	if got != `":" delay(1s)` {
		t.Errorf("String() = %q", got)
	}
}
