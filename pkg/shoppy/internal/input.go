package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/constants"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

// Event is a button press or release after mapping from physical input.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// PointerKind classifies mouse and touch input.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerDrag
	PointerWheel
)

// PointerEvent is a mouse or touch event in logical window coordinates.
type PointerEvent struct {
	Kind  PointerKind
	Point view.Point
	DY    int32 // Vertical movement for drags and wheel notches
}

const axisDeadZone = 16000

// Left mouse button bit in a motion event's state mask.
const leftButtonMask = 1

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_s:         constants.VirtualButtonStart,
	sdl.K_m:         constants.VirtualButtonMenu,
}

var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

// Handhelds label their face buttons Nintendo style, so SDL's positional
// A/B and X/Y are swapped unless the user asks for direct mapping.
var faceButtonSwap = map[constants.VirtualButton]constants.VirtualButton{
	constants.VirtualButtonA: constants.VirtualButtonB,
	constants.VirtualButtonB: constants.VirtualButtonA,
	constants.VirtualButtonX: constants.VirtualButtonY,
	constants.VirtualButtonY: constants.VirtualButtonX,
}

// InputProcessor maps SDL events to virtual buttons and pointer events.
type InputProcessor struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController
	axisHeld        map[uint8]constants.VirtualButton
}

var inputProcessor *InputProcessor

func InitInputProcessor(flipFaceButtons bool) {
	inputProcessor = &InputProcessor{
		flipFaceButtons: flipFaceButtons,
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
		axisHeld:        make(map[uint8]constants.VirtualButton),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		inputProcessor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	GetInternalLogger().Debug("Opened game controller", "index", index, "name", controller.Name())
}

// ProcessSDLEvent maps a button-like SDL event. It returns nil for events it does not map.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		if swapped, ok := faceButtonSwap[button]; ok && !p.flipFaceButtons {
			button = swapped
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}

	case *sdl.ControllerAxisEvent:
		return p.processAxis(e)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			if controller, ok := p.controllers[e.Which]; ok {
				controller.Close()
				delete(p.controllers, e.Which)
			}
		}
	}
	return nil
}

func (p *InputProcessor) processAxis(e *sdl.ControllerAxisEvent) *Event {
	var negative, positive constants.VirtualButton
	switch sdl.GameControllerAxis(e.Axis) {
	case sdl.CONTROLLER_AXIS_LEFTX:
		negative, positive = constants.VirtualButtonLeft, constants.VirtualButtonRight
	case sdl.CONTROLLER_AXIS_LEFTY:
		negative, positive = constants.VirtualButtonUp, constants.VirtualButtonDown
	default:
		return nil
	}

	held := p.axisHeld[e.Axis]
	switch {
	case e.Value < -axisDeadZone && held != negative:
		p.axisHeld[e.Axis] = negative
		return &Event{Button: negative, Pressed: true}
	case e.Value > axisDeadZone && held != positive:
		p.axisHeld[e.Axis] = positive
		return &Event{Button: positive, Pressed: true}
	case e.Value >= -axisDeadZone && e.Value <= axisDeadZone && held != constants.VirtualButtonUnassigned:
		p.axisHeld[e.Axis] = constants.VirtualButtonUnassigned
		return &Event{Button: held, Pressed: false}
	}
	return nil
}

// ProcessPointerEvent maps mouse input, including the mouse events SDL
// synthesizes from touches.
func (p *InputProcessor) ProcessPointerEvent(event sdl.Event) *PointerEvent {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return nil
		}
		kind := PointerUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			kind = PointerDown
		}
		return &PointerEvent{Kind: kind, Point: view.Point{X: e.X, Y: e.Y}}

	case *sdl.MouseMotionEvent:
		if e.State&leftButtonMask == 0 {
			return nil
		}
		return &PointerEvent{Kind: PointerDrag, Point: view.Point{X: e.X, Y: e.Y}, DY: e.YRel}

	case *sdl.MouseWheelEvent:
		return &PointerEvent{Kind: PointerWheel, DY: e.Y}
	}
	return nil
}

func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id, controller := range inputProcessor.controllers {
		controller.Close()
		delete(inputProcessor.controllers, id)
	}
}

// tapSlop is how far a press may travel and still count as a tap.
const tapSlop = 12

// TapTracker turns pointer events into taps and drag scrolls.
type TapTracker struct {
	down     bool
	start    view.Point
	traveled int32
}

// Handle consumes ev. It returns the tap point on a release that did not
// drag, and the vertical drag delta otherwise.
func (t *TapTracker) Handle(ev *PointerEvent) (tap *view.Point, scroll int32) {
	switch ev.Kind {
	case PointerDown:
		t.down = true
		t.start = ev.Point
		t.traveled = 0
	case PointerDrag:
		if !t.down {
			return nil, 0
		}
		t.traveled += abs32(ev.DY)
		if t.traveled > tapSlop {
			return nil, -ev.DY
		}
	case PointerUp:
		wasTap := t.down && t.traveled <= tapSlop
		t.down = false
		if wasTap {
			p := ev.Point
			return &p, 0
		}
	}
	return nil, 0
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
