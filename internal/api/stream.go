package api

import (
	"context"
	"log"
	"net/http"

	"github.com/Quuxplusone/xword/internal/models"
	"github.com/Quuxplusone/xword/pkg/fill"
	"github.com/Quuxplusone/xword/pkg/grid"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamFill upgrades to a websocket, reads one fill request, and
// streams every solution as its own frame, ending with a done frame.
// Closing the socket cancels the search; the solver unwinds through its
// bail sentinel rather than being killed mid-cover.
func (h *Handlers) StreamFill(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req models.FillRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(models.StreamMessage{Type: models.MsgError, Error: "invalid fill request"})
		return
	}

	g, opts, err := h.prepare(&req)
	if err != nil {
		conn.WriteJSON(models.StreamMessage{Type: models.MsgError, Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	// A read pump whose only job is noticing the peer going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	filler := fill.New(h.dict, opts)
	count, err := filler.Fill(ctx, g, func(solved *grid.Grid) {
		if werr := conn.WriteJSON(models.StreamMessage{Type: models.MsgSolution, Solution: solved.Lines()}); werr != nil {
			cancel()
		}
	})
	if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
		conn.WriteJSON(models.StreamMessage{Type: models.MsgError, Error: err.Error(), Count: count})
		return
	}

	conn.WriteJSON(models.StreamMessage{Type: models.MsgDone, Count: count})
}
