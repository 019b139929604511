// Package photoserver receives photos from phones on the same network:
// an embedded mobile page posts multipart uploads that are filed into the
// project tree, recorded in a SQLite ledger and announced to websocket
// clients, so shots taken in the field land next to the images being
// annotated.
package photoserver

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/redmarklab/redmark/pkg/render"
)

// Upload modes. Overview shots are filed under images/ by target and
// angle; item shots under the item's report folder.
const (
	ModeOverview = "overview"
	ModeItem     = "item"
)

// TimestampFormat prefixes item photo filenames.
const TimestampFormat = "20060102_1504"

// ThumbMaxDim bounds the longest edge of generated thumbnails.
const ThumbMaxDim = 320

// ThumbsDirName is the hidden per-folder thumbnail directory.
const ThumbsDirName = ".thumbs"

//go:embed mobile.html
var mobilePage []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server is the LAN upload server.
type Server struct {
	cfg     Config
	project Project
	ledger  *Ledger
	hub     *Hub
	log     *logrus.Logger

	httpServer *http.Server
	cancelHub  context.CancelFunc
	port       int

	// OnPhoto fires after an upload has been stored and recorded.
	OnPhoto func(u Upload)
}

// NewServer builds a server rooted at cfg.Root, creating the root and
// opening the ledger. A nil logger gets a default one.
func NewServer(cfg Config, log *logrus.Logger) (*Server, error) {
	if log == nil {
		log = logrus.New()
	}
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("server root: %w", err)
	}
	ledger, err := OpenLedger(filepath.Join(cfg.Root, "uploads.db"))
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:     cfg,
		project: Project{Name: cfg.ProjectName, Root: cfg.Root},
		ledger:  ledger,
		hub:     NewHub(log),
		log:     log,
		port:    cfg.Port,
	}, nil
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/project", s.handleProject)
	mux.HandleFunc("/api/recent", s.handleRecent)
	mux.HandleFunc("/api/upload", s.handleUpload)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Start begins serving in the background. Bind errors are reported here,
// not from the serving goroutine.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelHub = cancel
	go s.hub.Run(ctx)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		cancel()
		return fmt.Errorf("listen: %w", err)
	}
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.httpServer = &http.Server{Handler: s.Handler()}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("photo server stopped")
		}
	}()
	s.log.WithField("url", s.URL()).Info("photo server listening")
	return nil
}

// Shutdown stops the HTTP server, the hub and the ledger.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	if s.cancelHub != nil {
		s.cancelHub()
	}
	if cerr := s.ledger.Close(); err == nil {
		err = cerr
	}
	return err
}

// URL returns the address a phone on the LAN should open.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s:%d/", LocalIP(), s.port)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(mobilePage)
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Name  string `json:"name"`
		Items []Item `json:"items"`
	}{Name: s.project.Name, Items: s.project.Items()})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	uploads, err := s.ledger.Recent(20)
	if err != nil {
		s.log.WithError(err).Error("recent uploads query failed")
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: "ledger unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, uploads)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "missing photo"})
		return
	}
	defer file.Close()

	mode := r.FormValue("mode")
	if mode == "" {
		mode = ModeItem
	}
	target := r.FormValue("target")

	var dir, name, itemRef string
	switch mode {
	case ModeOverview:
		if target == "" {
			target = "UAV"
		}
		angle := r.FormValue("angle")
		if angle == "" {
			angle = "front"
		}
		dir = s.project.ImagesDir()
		name = fmt.Sprintf("%s_%s.jpg", Sanitize(target), Sanitize(angle))

	case ModeItem:
		itemID := r.FormValue("item_id")
		if itemID == "" {
			itemID = "unknown"
		}
		itemName := r.FormValue("item_name")
		if itemName == "" {
			itemName = "unknown"
		}
		title := r.FormValue("title")
		safeTitle := "photo"
		if title != "" {
			safeTitle = Sanitize(title)
		}
		itemRef = Sanitize(itemID) + "_" + Sanitize(itemName)
		dir = filepath.Join(s.project.ReportsDir(), itemRef)
		if target != "" {
			dir = filepath.Join(dir, Sanitize(target))
		}
		name = fmt.Sprintf("%s_img_%s.jpg", time.Now().Format(TimestampFormat), safeTitle)

	default:
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "unknown mode"})
		return
	}

	path, err := saveUnique(dir, name, file)
	if err != nil {
		s.log.WithError(err).Error("storing upload failed")
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: "could not store photo"})
		return
	}
	s.writeThumbnail(path)

	rel, err := filepath.Rel(s.project.Root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	u := Upload{
		Filename:  filepath.ToSlash(rel),
		Mode:      mode,
		Item:      itemRef,
		Target:    target,
		Size:      header.Size,
		CreatedAt: time.Now(),
	}
	if u.ID, err = s.ledger.Insert(u); err != nil {
		s.log.WithError(err).Error("recording upload failed")
	}

	s.log.WithFields(logrus.Fields{
		"mode": mode,
		"file": u.Filename,
		"size": u.Size,
	}).Info("photo received")

	if data, err := json.Marshal(struct {
		Type   string `json:"type"`
		Upload Upload `json:"upload"`
	}{Type: "photo_received", Upload: u}); err == nil {
		s.hub.Broadcast(data)
	}
	if s.OnPhoto != nil {
		s.OnPhoto(u)
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "success", Filename: u.Filename})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	conn.SetReadLimit(512)
	s.hub.Register(conn)
	defer s.hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeThumbnail stores a scaled copy under .thumbs/ next to the photo.
// Best effort: a failure is logged and the upload stands.
func (s *Server) writeThumbnail(path string) {
	img, err := imaging.Open(path)
	if err != nil {
		s.log.WithError(err).Warn("thumbnail decode failed")
		return
	}
	thumb := render.Thumbnail(img, ThumbMaxDim)
	if thumb == nil {
		return
	}
	dir := filepath.Join(filepath.Dir(path), ThumbsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.WithError(err).Warn("thumbnail dir failed")
		return
	}
	dst := filepath.Join(dir, filepath.Base(path))
	if err := imaging.Save(thumb, dst, imaging.JPEGQuality(80)); err != nil {
		s.log.WithError(err).Warn("thumbnail save failed")
	}
}

// saveUnique writes r to dir/name, appending _1, _2, ... before the
// extension until a fresh file can be created. Existing files are never
// overwritten.
func saveUnique(dir, name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("upload dir: %w", err)
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; ; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", candidate, err)
		}
		if _, err := io.Copy(f, r); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("write %s: %w", candidate, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", candidate, err)
		}
		return path, nil
	}
}

type statusResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
