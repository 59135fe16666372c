package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/internal/render"

	"github.com/gorilla/websocket"
)

const (
	liveReadTimeout  = 60 * time.Second
	liveWriteTimeout = 10 * time.Second
	livePingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// LiveRequest is one UI state change sent over the live channel
type LiveRequest struct {
	Site string   `json:"site"`
	Low  *float64 `json:"low,omitempty"`
	High *float64 `json:"high,omitempty"`
}

// LiveUpdate carries both recomputed charts for a LiveRequest
type LiveUpdate struct {
	Selection       model.Selection         `json:"selection"`
	Pie             *model.PieChartSpec     `json:"pie,omitempty"`
	Scatter         *model.ScatterChartSpec `json:"scatter,omitempty"`
	PieImageURL     string                  `json:"pie_image_url,omitempty"`
	ScatterImageURL string                  `json:"scatter_image_url,omitempty"`
	Error           string                  `json:"error,omitempty"`
}

// Live recomputes both charts whenever the browser sends a new selection
// @Summary Live chart updates
// @Description WebSocket channel. Send {"site","low","high"}; each message is answered with both chart specs and image URLs
// @Tags charts
// @Success 101 {object} LiveUpdate
// @Router /live [get]
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("🔌 Live client connected from %s", r.RemoteAddr)
	defer log.Printf("🔌 Live client %s disconnected", r.RemoteAddr)

	conn.SetReadDeadline(time.Now().Add(liveReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(liveReadTimeout))
		return nil
	})

	updates := make(chan LiveUpdate, 1)
	done := make(chan struct{})
	go h.liveWriter(conn, updates, done)
	defer close(updates)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("❌ Live read failed: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(liveReadTimeout))

		update := h.liveUpdate(msg)
		select {
		case updates <- update:
		case <-done:
			return
		}
	}
}

// liveWriter owns all writes to conn, interleaving updates with keepalive pings
func (h *Handler) liveWriter(conn *websocket.Conn, updates <-chan LiveUpdate, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(livePingInterval)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := conn.WriteJSON(update); err != nil {
				log.Printf("❌ Live write failed: %v", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) liveUpdate(msg []byte) LiveUpdate {
	var req LiveRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return LiveUpdate{Error: fmt.Sprintf("invalid request: %v", err)}
	}

	bounds := h.Dataset.PayloadBounds()
	sel := model.Selection{
		Site:  model.ParseSiteSelection(req.Site),
		Range: bounds,
	}
	if req.Low != nil {
		sel.Range.Low = *req.Low
	}
	if req.High != nil {
		sel.Range.High = *req.High
	}

	pie := dashboard.SiteSuccess(h.Dataset, sel.Site)
	scatter := dashboard.PayloadScatter(h.Dataset, sel.Site, sel.Range)
	h.journal(model.ChartKindPie, sel.Site, nil, pie.Total(), "live")
	h.journal(model.ChartKindScatter, sel.Site, &sel.Range, scatter.PointCount(), "live")

	pieURL, scatterURL := render.ImageURLs(sel)
	return LiveUpdate{
		Selection:       sel,
		Pie:             &pie,
		Scatter:         &scatter,
		PieImageURL:     pieURL,
		ScatterImageURL: scatterURL,
	}
}
