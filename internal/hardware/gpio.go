package hardware

import (
	"fmt"
	"os"
	"strconv"
)

const gpioRoot = "/sys/class/gpio"

// GPIORelay drives a relay through the sysfs GPIO interface. activeHigh
// selects which physical level energizes the relay coil.
type GPIORelay struct {
	pin        int
	activeHigh bool
	valuePath  string
}

// NewGPIORelay exports the pin, sets it as an output and leaves it in the
// inactive (locked) state.
func NewGPIORelay(pin int, activeHigh bool) (*GPIORelay, error) {
	pinDir := fmt.Sprintf("%s/gpio%d", gpioRoot, pin)

	if _, err := os.Stat(pinDir); os.IsNotExist(err) {
		if err := os.WriteFile(gpioRoot+"/export", []byte(strconv.Itoa(pin)), 0o220); err != nil {
			return nil, fmt.Errorf("export gpio %d: %w", pin, err)
		}
	}
	if err := os.WriteFile(pinDir+"/direction", []byte("out"), 0o220); err != nil {
		return nil, fmt.Errorf("set gpio %d direction: %w", pin, err)
	}

	r := &GPIORelay{
		pin:        pin,
		activeHigh: activeHigh,
		valuePath:  pinDir + "/value",
	}
	// Start locked, whatever state a previous run left behind.
	if err := r.Set(Low); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *GPIORelay) Set(level Level) error {
	physical := "0"
	if (level == High) == r.activeHigh {
		physical = "1"
	}
	if err := os.WriteFile(r.valuePath, []byte(physical), 0o220); err != nil {
		return fmt.Errorf("%w: gpio %d: %v", ErrWrite, r.pin, err)
	}
	return nil
}

// Close drives the relay inactive and unexports the pin.
func (r *GPIORelay) Close() error {
	err := r.Set(Low)
	if uerr := os.WriteFile(gpioRoot+"/unexport", []byte(strconv.Itoa(r.pin)), 0o220); uerr != nil && err == nil {
		err = fmt.Errorf("unexport gpio %d: %w", r.pin, uerr)
	}
	return err
}
