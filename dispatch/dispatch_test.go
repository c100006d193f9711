package dispatch

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/udonpad/action"
	"github.com/udonpad/layers"
	"github.com/udonpad/macro"
)

type fakeLayers struct {
	active   layers.ID
	switches []layers.ID
}

func (f *fakeLayers) SwitchTo(id layers.ID) {
	f.active = id
	f.switches = append(f.switches, id)
}

func (f *fakeLayers) Active() layers.ID { return f.active }

type recordingSink struct {
	ops []string
}

func (r *recordingSink) Tap(keys ...int) error {
	r.ops = append(r.ops, fmt.Sprintf("tap%v", keys))
	return nil
}

func (r *recordingSink) Type(text string) error {
	r.ops = append(r.ops, "type:"+text)
	return nil
}

func (r *recordingSink) Wait(d time.Duration) {
	r.ops = append(r.ops, "wait:"+d.String())
}

func newTestDispatcher() (*Dispatcher, *fakeLayers, *recordingSink) {
	lc := &fakeLayers{}
	sink := &recordingSink{}
	return New(lc, sink), lc, sink
}

func emit(t *testing.T, n int) action.Emit {
	t.Helper()
	e, ok := action.EmoteAt(n)
	if !ok {
		t.Fatalf("no emote %d", n)
	}
	return action.Emit{Emote: e}
}

func TestInitialState(t *testing.T) {
	d, _, _ := newTestDispatcher()
	if d.Latched() {
		t.Error("latch starts set")
	}
	if d.Target() != 0 {
		t.Errorf("cursor starts at %d, want 0", d.Target())
	}
}

func TestEmitInline(t *testing.T) {
	for _, e := range action.Emotes() {
		d, _, sink := newTestDispatcher()
		if !d.HandleKey(action.Emit{Emote: e}, true) {
			t.Fatalf("emit %d not handled", e.Slot())
		}
		want := []string{"type::", "type:" + e.Token(), "type:: "}
		if !reflect.DeepEqual(sink.ops, want) {
			t.Errorf("emit %d ops = %q, want %q", e.Slot(), sink.ops, want)
		}
	}
}

func TestEmitReaction(t *testing.T) {
	for _, e := range action.Emotes() {
		d, _, sink := newTestDispatcher()
		d.HandleKey(action.ModifierLatch{}, true)
		d.HandleKey(action.Emit{Emote: e}, true)
		want := []string{
			fmt.Sprintf("tap%v", []int(macro.ReactionChord)),
			"type:" + e.Token(),
			"wait:1s",
			"type:\n",
		}
		if !reflect.DeepEqual(sink.ops, want) {
			t.Errorf("emit %d ops = %q, want %q", e.Slot(), sink.ops, want)
		}
	}
}

func TestScenarioPlusOneReaction(t *testing.T) {
	d, _, sink := newTestDispatcher()
	d.HandleKey(action.ModifierLatch{}, true)
	d.HandleKey(emit(t, 4), true)
	if len(sink.ops) != 4 || sink.ops[1] != "type:+1" || sink.ops[2] != "wait:1s" || sink.ops[3] != "type:\n" {
		t.Errorf("ops = %q", sink.ops)
	}
}

func TestReleasesAreSilentButHandled(t *testing.T) {
	d, lc, sink := newTestDispatcher()
	for n := 1; n <= action.EmoteCount; n++ {
		if !d.HandleKey(emit(t, n), false) {
			t.Errorf("release of emote %d not handled", n)
		}
	}
	if !d.HandleKey(action.JumpLayer{}, false) {
		t.Error("release of jump not handled")
	}
	if len(sink.ops) != 0 {
		t.Errorf("releases produced output %q", sink.ops)
	}
	if len(lc.switches) != 0 {
		t.Errorf("release switched layers %v", lc.switches)
	}
}

func TestLatchFollowsLastTransition(t *testing.T) {
	d, _, sink := newTestDispatcher()
	d.HandleKey(action.ModifierLatch{}, true)
	d.HandleKey(action.ModifierLatch{}, false)
	d.HandleKey(action.ModifierLatch{}, true)
	d.HandleKey(emit(t, 5), true)
	if len(sink.ops) == 0 || sink.ops[0] != fmt.Sprintf("tap%v", []int(macro.ReactionChord)) {
		t.Errorf("latch set last, ops = %q", sink.ops)
	}

	sink.ops = nil
	d.HandleKey(action.ModifierLatch{}, false)
	d.HandleKey(emit(t, 5), true)
	if len(sink.ops) == 0 || sink.ops[0] != "type::" {
		t.Errorf("latch cleared last, ops = %q", sink.ops)
	}
}

func TestLatchReportsHandled(t *testing.T) {
	d, _, sink := newTestDispatcher()
	if !d.HandleKey(action.ModifierLatch{}, true) || !d.HandleKey(action.ModifierLatch{}, false) {
		t.Error("latch transitions not handled")
	}
	if len(sink.ops) != 0 {
		t.Errorf("latch produced output %q", sink.ops)
	}
}

func TestJumpUsesCursor(t *testing.T) {
	d, lc, _ := newTestDispatcher()
	d.HandleEncoder(true)
	d.HandleEncoder(true)
	d.HandleKey(action.ModifierLatch{}, true)

	if !d.HandleKey(action.JumpLayer{}, true) {
		t.Fatal("jump not handled")
	}
	if !reflect.DeepEqual(lc.switches, []layers.ID{2}) {
		t.Errorf("switches = %v, want [2]", lc.switches)
	}
	if d.Target() != 2 {
		t.Errorf("cursor changed to %d", d.Target())
	}
	if !d.Latched() {
		t.Error("jump cleared the latch")
	}
}

func TestStandardActionsPassThrough(t *testing.T) {
	d, lc, sink := newTestDispatcher()
	for _, a := range []action.Action{
		action.Key{Codes: []int{16}, Label: "Q"},
		action.NoOp{Label: "RGB_MOD"},
		nil,
	} {
		for _, pressed := range []bool{true, false} {
			if d.HandleKey(a, pressed) {
				t.Errorf("%s handled by dispatcher", action.Describe(a))
			}
		}
	}
	if len(sink.ops) != 0 || len(lc.switches) != 0 {
		t.Errorf("standard actions had side effects: %q %v", sink.ops, lc.switches)
	}
}

func TestEncoderAlwaysConsumed(t *testing.T) {
	d, _, _ := newTestDispatcher()
	if !d.HandleEncoder(true) || !d.HandleEncoder(false) {
		t.Error("encoder event not consumed")
	}
}

func TestEmitZeroEmoteNotHandled(t *testing.T) {
	d, _, sink := newTestDispatcher()
	for _, pressed := range []bool{true, false} {
		if d.HandleKey(action.Emit{}, pressed) {
			t.Errorf("HandleKey(Emit{}, %v) = true", pressed)
		}
	}
	d.HandleKey(action.ModifierLatch{}, true)
	if d.HandleKey(action.Emit{}, true) {
		t.Error("latched HandleKey(Emit{}) = true")
	}
	if len(sink.ops) != 0 {
		t.Errorf("zero emote typed %q", sink.ops)
	}
}
