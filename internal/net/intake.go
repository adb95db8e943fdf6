package net

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"riftlane/server/internal/content"
	"riftlane/server/internal/room"
)

// Intake is the built-in quick-match assembler: READY players queue up in
// arrival order and every PLAYERS_PER_TEAM*2 of them become one match
// descriptor, alternating sides. It only builds descriptors; seat
// assignment, lobbies, and champion select stay external concerns.
type Intake struct {
	logger  *zap.Logger
	manager *room.Manager
	reg     *content.Registry
	perTeam int

	// Champion ids used when READY omits one, in a stable rotation.
	roster []string

	mu    sync.Mutex
	queue []room.Seat
}

// NewIntake builds the assembler. perTeam below 1 is treated as 1.
func NewIntake(reg *content.Registry, manager *room.Manager, perTeam int, logger *zap.Logger) *Intake {
	if perTeam < 1 {
		perTeam = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	roster := make([]string, 0, len(reg.Champions))
	for id := range reg.Champions {
		roster = append(roster, id)
	}
	sort.Strings(roster)
	return &Intake{
		logger:  logger,
		manager: manager,
		reg:     reg,
		perTeam: perTeam,
		roster:  roster,
	}
}

// Ready queues a player for the next match. An unknown champion id is
// rejected; an empty one picks from the rotation.
func (i *Intake) Ready(playerID, championID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	for _, seat := range i.queue {
		if seat.PlayerID == playerID {
			return nil
		}
	}
	if championID == "" {
		if len(i.roster) == 0 {
			return fmt.Errorf("no champions available")
		}
		championID = i.roster[len(i.queue)%len(i.roster)]
	} else if _, ok := i.reg.Champions[championID]; !ok {
		return fmt.Errorf("unknown champion %q", championID)
	}
	i.queue = append(i.queue, room.Seat{PlayerID: playerID, ChampionID: championID})
	i.logger.Info("player ready",
		zap.String("player_id", playerID),
		zap.String("champion_id", championID),
		zap.Int("queued", len(i.queue)))
	i.tryAssemble()
	return nil
}

// Remove drops a player who disconnected before their match formed.
func (i *Intake) Remove(playerID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	for idx, seat := range i.queue {
		if seat.PlayerID == playerID {
			i.queue = append(i.queue[:idx], i.queue[idx+1:]...)
			return
		}
	}
}

// Queued reports the number of waiting players.
func (i *Intake) Queued() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.queue)
}

// tryAssemble forms a descriptor when enough players are waiting. Callers
// hold the mutex.
func (i *Intake) tryAssemble() {
	need := i.perTeam * 2
	for len(i.queue) >= need {
		seats := make([]room.Seat, need)
		copy(seats, i.queue[:need])
		i.queue = append(i.queue[:0], i.queue[need:]...)
		for idx := range seats {
			if idx%2 == 0 {
				seats[idx].Side = content.SideBlue
			} else {
				seats[idx].Side = content.SideRed
			}
		}
		gameID, err := i.manager.CreateRoom(room.MatchDescriptor{Players: seats})
		if err != nil {
			i.logger.Error("quick match failed", zap.Error(err))
			continue
		}
		i.logger.Info("quick match assembled",
			zap.String("game_id", gameID),
			zap.Int("players", len(seats)))
	}
}
