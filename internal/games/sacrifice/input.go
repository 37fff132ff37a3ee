package sacrifice

// Command is a player intent queued between ticks.
type Command int

const (
	// CommandJump is the only gameplay input; it carries no payload.
	CommandJump Command = iota + 1
)

// Enqueue queues a command for the next Step. Hosts call it from their
// input handlers; nothing is applied until the tick starts.
func (s *Sim) Enqueue(cmd Command) {
	if s.gameOver {
		return
	}
	s.queue = append(s.queue, cmd)
}

// Pending returns the number of queued commands.
func (s *Sim) Pending() int {
	return len(s.queue)
}

func (s *Sim) drainCommands() {
	for _, cmd := range s.queue {
		switch cmd {
		case CommandJump:
			s.Jump()
		}
	}
	s.queue = s.queue[:0]
}

// Jump applies a jump immediately: the player is launched and the jump
// chain grows. Every Nth chained jump is a sacrifice that costs health.
// Health may go negative here; the next Step clamps it and ends the run.
func (s *Sim) Jump() {
	if s.gameOver {
		return
	}
	s.player.Jump()
	s.jumpChain++
	s.stats.Jumps++

	if s.difficulty.IsSacrifice(s.jumpChain) {
		damage := s.difficulty.SacrificeDamage(s.score)
		s.health -= damage
		s.stats.Sacrifices++
		s.stats.SacrificeDamage += damage
	}
}
