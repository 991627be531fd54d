package idblaster

import (
	"context"
	"encoding/json"

	"github.com/madlabz/idblaster/utils"
	"github.com/rs/zerolog/log"
)

// Poller long-polls the Bot API and wraps the updates into a channel of events,
// allowing it to be select-able along with other channels.
type Poller struct {
	Fetch    func(offset int) ([]json.RawMessage, error) // Fetch performs one getUpdates call.
	Username string                                      // Username of the bot, see [decodeUpdate].
	Events   chan *Event                                 // Events receives the decoded events.

	offset     int
	runCtx     context.Context
	cancelFunc context.CancelFunc
}

// Sustain starts pumping events until ctx is done or Close is called.
func (p *Poller) Sustain(ctx context.Context) {
	p.runCtx, p.cancelFunc = context.WithCancel(ctx)
	p.Events = make(chan *Event, EVENT_BUFFER_SIZE)

	go p.pumpEvent()
}

// Close stops the pump. Events is closed once the in-flight poll returns.
func (p *Poller) Close() {
	if p.cancelFunc != nil {
		p.cancelFunc()
	}
}

// pumpEvent pumps incoming updates to the Events channel.
func (p *Poller) pumpEvent() {
	defer close(p.Events)

	backoff := &Backoff{Duration: BASE_BACKOFF_DUR, MaxDuration: MAX_BACKOFF_DUR}

	for p.runCtx.Err() == nil {
		updates, err := p.Fetch(p.offset)
		if err != nil {
			if p.runCtx.Err() != nil {
				return
			}

			log.Error().Err(err).Int("Offset", p.offset).Msg("Polling failed")
			if backoff.Sleep(p.runCtx) {
				return
			}
			continue
		}
		backoff.Reset()

		for _, raw := range updates {
			updateID, event, err := decodeUpdate(raw, p.Username)
			p.offset = utils.Max(p.offset, updateID+1)

			if err != nil {
				log.Warn().Err(err).Int("UpdateID", updateID).Msg("Undecodable update")
				continue
			}
			if event == nil {
				log.Debug().Int("UpdateID", updateID).Msg("Unhandled update")
				continue
			}

			select {
			case p.Events <- event:
			case <-p.runCtx.Done():
				return
			}
		}
	}
}
