package engine

// MaxStepsPerFrame bounds the logic ticks run in one physical frame.
const MaxStepsPerFrame = 1000

// Clock converts the effective speed into whole logic ticks per physical
// frame. Fractional speeds carry over, so a factor of 0.5 ticks every
// second frame.
type Clock struct {
	acc float64
}

func (c *Clock) Steps(speed float64) int {
	if speed <= 0 {
		return 0
	}
	c.acc += speed
	n := int(c.acc)
	c.acc -= float64(n)
	if n > MaxStepsPerFrame {
		n = MaxStepsPerFrame
	}
	return n
}

func (c *Clock) Reset() {
	c.acc = 0
}
