package net

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"StickerPad/internal/config"
	"StickerPad/internal/export"
	"StickerPad/internal/pad"
)

//go:embed static/index.html
var indexHTML []byte

// Message is a JSON message from server to page. Binary messages carry PNG
// data: a live frame, or an export when preceded by an "export" message.
type Message struct {
	Type   string   `json:"type"`
	Format string   `json:"format,omitempty"`
	Glyphs []string `json:"glyphs,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// ConnectionManager tracks open page connections so they can be closed on
// shutdown. Each connection draws on its own pad.
type ConnectionManager struct {
	conns map[string]*websocket.Conn
	mu    sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{conns: make(map[string]*websocket.Conn)}
}

func (cm *ConnectionManager) Add(id string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.conns[id] = conn
	log.Printf("[WS] %s connected from %s", id, conn.RemoteAddr())
}

func (cm *ConnectionManager) Remove(id string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	delete(cm.conns, id)
	log.Printf("[WS] %s disconnected", id)
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.conns)
}

func (cm *ConnectionManager) CloseAll() {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	for _, conn := range cm.conns {
		conn.Close()
	}
}

// Server serves the sketchpad page and its websocket.
type Server struct {
	cfg      config.Config
	conns    *ConnectionManager
	upgrader websocket.Upgrader
}

func NewServer(cfg config.Config) *Server {
	return &Server{
		cfg:   cfg,
		conns: NewConnectionManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
		},
	}
}

func (s *Server) Connections() *ConnectionManager { return s.conns }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// ListenAndServe runs until ctx is cancelled, advertising the server over
// mDNS when configured to.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	log.Printf("[WS] sketchpad at http://%s:%d/", OutgoingIP(), port)

	if s.cfg.Advertise {
		md, err := Advertise(s.cfg.Instance, port)
		if err != nil {
			log.Printf("[MDNS] not advertising: %v", err)
		} else {
			defer md.Shutdown()
		}
	}

	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.conns.CloseAll()
		srv.Shutdown(shutdownCtx)
	}()
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// serveWS owns one pad for the lifetime of the connection. The read loop is
// the only goroutine that touches it or writes to the socket.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade: %v", err)
		return
	}
	defer conn.Close()
	id := uuid.NewString()
	s.conns.Add(id, conn)
	defer s.conns.Remove(id)

	p := pad.New(s.cfg, nil)
	var writeErr error
	p.OnChanged(func() {
		if writeErr == nil {
			writeErr = writeFrame(conn, p)
		}
	})

	if err := conn.WriteJSON(Message{Type: "tools", Glyphs: p.Tools().Glyphs()}); err != nil {
		return
	}
	if err := writeFrame(conn, p); err != nil {
		return
	}

	for writeErr == nil {
		var cmd pad.Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[WS] %s read: %v", id, err)
			}
			return
		}
		switch cmd.Type {
		case pad.CmdExport, pad.CmdExportPDF:
			writeErr = writeExport(conn, p, cmd.Type)
		case "sticker":
			if p.AddStickerGlyph(cmd.Glyph) {
				writeErr = conn.WriteJSON(Message{Type: "tools", Glyphs: p.Tools().Glyphs()})
			}
		default:
			if err := p.Apply(cmd); err != nil {
				writeErr = conn.WriteJSON(Message{Type: "error", Error: err.Error()})
			}
		}
	}
	log.Printf("[WS] %s write: %v", id, writeErr)
}

// writeFrame sends the canvas, preview included, at on-screen size.
func writeFrame(conn *websocket.Conn, p *pad.Pad) error {
	c := export.NewCanvas(p.Size(), 1)
	p.Render(c)
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Image()); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return conn.WriteMessage(websocket.BinaryMessage, buf.Bytes())
}

func writeExport(conn *websocket.Conn, p *pad.Pad, kind string) error {
	var buf bytes.Buffer
	format := "png"
	var err error
	if kind == pad.CmdExportPDF {
		format = "pdf"
		err = p.ExportPDF(&buf)
	} else {
		err = p.ExportPNG(&buf)
	}
	if err != nil {
		return conn.WriteJSON(Message{Type: "error", Error: err.Error()})
	}
	if err := conn.WriteJSON(Message{Type: "export", Format: format}); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.BinaryMessage, buf.Bytes())
}
