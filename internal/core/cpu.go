package core

// ClockStart is the first second of every simulation.
const ClockStart = 1

// CpuMetric summarizes how the simulated cpu spent its time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU holds the clock of a single simulation run.
type CPU struct {
	clock int
}

func NewCPU() *CPU {
	return &CPU{clock: ClockStart}
}

func (c *CPU) Clock() int {
	return c.clock
}

// WaitFor jumps the clock forward to arrival when the cpu would otherwise be idle.
// It never moves the clock backwards.
func (c *CPU) WaitFor(arrival int) {
	if c.clock < arrival {
		c.clock = arrival
	}
}

// Execute runs a slice of work starting at the current clock.
func (c *CPU) Execute(slice int) (start, end int) {
	start = c.clock
	c.clock += slice
	return start, c.clock
}
