package dom

import "testing"

func TestNewEvent_InitializedTrustedFalse(t *testing.T) {
	e := NewEvent("click", true, true, false)

	if e.Type() != "click" {
		t.Errorf("expected type 'click', got %q", e.Type())
	}
	if !e.Bubbles() || !e.Cancelable() {
		t.Error("expected bubbles and cancelable as constructed")
	}
	if e.IsTrusted() {
		t.Error("events created via NewEvent must not be trusted")
	}
}

func TestEvent_PreventDefaultRequiresCancelable(t *testing.T) {
	notCancelable := NewEvent("click", true, false, false)
	notCancelable.PreventDefault()
	if notCancelable.DefaultPrevented() {
		t.Error("PreventDefault should have no effect on a non-cancelable event")
	}

	cancelable := NewEvent("click", true, true, false)
	cancelable.PreventDefault()
	if !cancelable.DefaultPrevented() {
		t.Error("expected DefaultPrevented true after PreventDefault on a cancelable event")
	}
}

func TestEvent_PreventDefaultNoOpDuringPassiveListener(t *testing.T) {
	e := NewEvent("click", true, true, false)
	e.SetInPassiveListener(true)
	e.PreventDefault()
	if e.DefaultPrevented() {
		t.Error("PreventDefault must be a no-op while in a passive listener")
	}
}

func TestEvent_StopImmediatePropagationSetsBothFlags(t *testing.T) {
	e := NewEvent("click", true, true, false)
	e.StopImmediatePropagation()
	if !e.PropagationStopped() || !e.ImmediatePropagationStopped() {
		t.Error("StopImmediatePropagation must set both propagation flags")
	}
}

func TestEvent_CancelBubbleLegacyAlias(t *testing.T) {
	e := NewEvent("click", true, true, false)
	if e.GetCancelBubble() {
		t.Error("expected cancelBubble false on a fresh event")
	}
	e.SetCancelBubble(true)
	if !e.PropagationStopped() {
		t.Error("setting cancelBubble=true should stop propagation")
	}
	// Setting it back to false has no effect per spec.
	e.SetCancelBubble(false)
	if !e.PropagationStopped() {
		t.Error("setting cancelBubble=false must not clear the propagation flag")
	}
}

func TestEvent_ReturnValueLegacyAlias(t *testing.T) {
	e := NewEvent("click", true, true, false)
	if !e.GetReturnValue() {
		t.Error("expected returnValue true on a fresh event")
	}
	e.SetReturnValue(false)
	if !e.DefaultPrevented() {
		t.Error("setting returnValue=false should call preventDefault")
	}
	if e.GetReturnValue() {
		t.Error("returnValue should reflect !defaultPrevented")
	}
}

func TestEvent_InitEventResetsState(t *testing.T) {
	e := NewEvent("click", true, true, false)
	e.StopPropagation()
	e.PreventDefault()

	e.InitEvent("change", false, false)

	if e.Type() != "change" {
		t.Errorf("expected type 'change', got %q", e.Type())
	}
	if e.Bubbles() || e.Cancelable() {
		t.Error("expected bubbles/cancelable reset to false")
	}
	if e.PropagationStopped() || e.DefaultPrevented() {
		t.Error("expected propagation/default-prevented flags cleared by initEvent")
	}
}

func TestEvent_InitEventNoOpDuringDispatch(t *testing.T) {
	e := NewEvent("click", true, true, false)
	e.SetDispatchFlag(true)

	e.InitEvent("change", false, false)

	if e.Type() != "click" {
		t.Error("initEvent must be a no-op while the dispatch flag is set")
	}
}

func TestEvent_SrcElementAliasesTarget(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	e := NewEvent("click", true, true, false)
	e.SetTarget(el.AsNode())

	if e.SrcElement() != e.Target() {
		t.Error("srcElement must alias target")
	}
}
