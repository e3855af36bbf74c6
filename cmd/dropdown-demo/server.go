package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/go-widgets/dropdown/pkg/dropdown"
	widgeterrors "github.com/go-widgets/dropdown/pkg/errors"
	"github.com/go-widgets/dropdown/pkg/html"
	"github.com/go-widgets/dropdown/pkg/program"
)

// demoItems are the options offered by the demo host.
var demoItems = []string{"Alpaca", "Capuchin", "Dormouse", "Kingfisher", "Wombat"}

// demoModel is the host state: the widget value plus the data it
// renders over. The widget never sees this struct; it only receives the
// items and selection per render.
type demoModel struct {
	widget   dropdown.Widget[string]
	items    []string
	selected *string
}

func demoUpdate(m demoModel, msg dropdown.Msg[string]) demoModel {
	w, event := m.widget.Update(msg)
	m.widget = w
	if sel, ok := event.(dropdown.ItemSelected[string]); ok {
		m.selected = &sel.Item
	}
	return m
}

func demoView(m demoModel) html.Node[dropdown.Msg[string]] {
	return m.widget.Render(m.items, m.selected, func(s string) string { return s })
}

// Server hosts the demo page and one program loop per websocket client.
type Server struct {
	addr     string
	settings dropdown.Settings
	upgrader websocket.Upgrader
}

// NewServer creates a demo server listening on addr.
func NewServer(addr string, settings dropdown.Settings) *Server {
	return &Server{
		addr:     addr,
		settings: settings,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				return strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1")
			},
		},
	}
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleSocket)
	log.Printf("dropdown demo listening on http://%s", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

// clientEvent is what the page sends when a bound event fires.
type clientEvent struct {
	ID string `json:"id"`
}

// renderFrame carries re-rendered markup to the page.
type renderFrame struct {
	Type string `json:"type"`
	HTML string `json:"html"`
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	sc := newSafeConn(conn)
	defer sc.Close()
	log.Printf("client connected: %s", r.RemoteAddr)

	prog := program.New(demoModel{
		widget: dropdown.NewWithSettings[string](s.settings),
		items:  demoItems,
	}, demoUpdate, demoView)

	// Bindings are rebuilt on every render; the lock covers the swap
	// between a push and the lookup for the next incoming event.
	var (
		bindingsMu sync.Mutex
		bindings   *program.Bindings[dropdown.Msg[string]]
	)
	push := func(tree html.Node[dropdown.Msg[string]]) {
		annotated, b := program.Annotate(tree)
		bindingsMu.Lock()
		bindings = b
		bindingsMu.Unlock()
		if err := sc.WriteJSON(renderFrame{Type: "render", HTML: annotated.String()}); err != nil {
			log.Printf("websocket write error: %v", err)
		}
	}
	prog.OnRender(push)
	push(prog.Render())

	for {
		var ev clientEvent
		if err := conn.ReadJSON(&ev); err != nil {
			log.Printf("client disconnected: %s", r.RemoteAddr)
			return
		}
		bindingsMu.Lock()
		current := bindings
		bindingsMu.Unlock()

		msg, ok := current.Lookup(ev.ID)
		if !ok {
			// Stale event from a superseded render; drop it.
			widgeterrors.Report(&widgeterrors.WidgetError{
				Op:   "demo.handleSocket",
				Kind: widgeterrors.KindTransport,
				Err:  fmt.Errorf("unknown binding %q", ev.ID),
			})
			continue
		}
		prog.Dispatch(msg)
	}
}

// safeConn serializes websocket writes; gorilla connections do not
// allow concurrent writers.
type safeConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	closed  bool
}

func newSafeConn(conn *websocket.Conn) *safeConn {
	return &safeConn{conn: conn}
}

func (sc *safeConn) WriteJSON(v any) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	if sc.closed {
		return nil
	}
	return sc.conn.WriteJSON(v)
}

func (sc *safeConn) Close() error {
	sc.writeMu.Lock()
	sc.closed = true
	sc.writeMu.Unlock()
	return sc.conn.Close()
}
