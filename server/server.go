// Package server accepts TCP connections and drives each one through the
// resp/command pipeline against a shared store.Store. The accept loop and
// per-connection handler follow the shape of obfs4-server's acceptLoop
// and handler: a listener wrapped once at startup (in
// netutil.LimitListener when a connection cap is set), and one goroutine
// per accepted connection.
package server

import (
	"context"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/netutil"

	"github.com/flarekv/respd/command"
	"github.com/flarekv/respd/resp"
	"github.com/flarekv/respd/store"
	"github.com/flarekv/respd/stream"
)

// tcpKeepAlivePeriod is the interval between TCP keepalive probes on
// accepted connections, matching net/http's server default.
const tcpKeepAlivePeriod = 15 * time.Second

// Config controls the accept loop and per-connection behavior.
type Config struct {
	// Addr is the TCP address to listen on, e.g. ":6379".
	Addr string

	// MaxConns caps concurrently open connections via
	// netutil.LimitListener. Zero means unlimited.
	MaxConns int

	// IdleTimeout closes a connection when no complete frame arrives
	// within this long of the connection starting to wait for its next
	// request. Zero disables the deadline.
	IdleTimeout time.Duration
}

// Server owns the listener and the store every connection is dispatched
// against.
type Server struct {
	cfg   Config
	store store.Store
	log   *zap.Logger

	listener net.Listener
	ready    chan struct{}
}

// New constructs a Server. It does not start listening until Serve is
// called.
func New(cfg Config, s store.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cfg: cfg, store: s, log: log, ready: make(chan struct{})}
}

// Serve listens on cfg.Addr and blocks, accepting connections until ctx
// is canceled or the listener errors. It is the TCP analogue of
// obfs4-server's acceptLoop.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.cfg.Addr)
	}
	if s.cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConns)
	}
	s.listener = ln
	close(s.ready)

	go func() {
		<-ctx.Done()
		s.listener.Close()
	}()

	s.log.Info("listening", zap.String("addr", ln.Addr().String()))

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			return err
		}
		go s.handle(conn)
	}
}

// Addr returns the address the server is listening on, blocking until
// Serve has established the listener.
func (s *Server) Addr() net.Addr {
	<-s.ready
	return s.listener.Addr()
}

func (s *Server) handle(conn net.Conn) {
	id := uuid.New()
	log := s.log.With(zap.Stringer("conn", id), zap.String("remote", conn.RemoteAddr().String()))
	log.Debug("connection opened")

	defer func() {
		conn.Close()
		log.Debug("connection closed")
	}()

	if tc, ok := conn.(*net.TCPConn); ok {
		if err := tc.SetNoDelay(true); err != nil {
			log.Warn("set no delay", zap.Error(err))
		}
		if err := tc.SetKeepAlive(true); err != nil {
			log.Warn("set keepalive", zap.Error(err))
		}
		if err := tc.SetKeepAlivePeriod(tcpKeepAlivePeriod); err != nil {
			log.Warn("set keepalive period", zap.Error(err))
		}
	}

	sc := stream.NewConn(conn)
	for {
		if s.cfg.IdleTimeout > 0 {
			if err := sc.SetReadDeadline(time.Now().Add(s.cfg.IdleTimeout)); err != nil {
				log.Warn("set read deadline", zap.Error(err))
				return
			}
		}

		frame, err := sc.ReadFrame()
		if err != nil {
			if !isClosedOrTimeout(err) {
				log.Debug("read frame", zap.Error(err))
			}
			return
		}

		reply := s.dispatch(log, frame)

		if err := sc.WriteFrame(reply); err != nil {
			log.Debug("write frame", zap.Error(err))
			return
		}
	}
}

func (s *Server) dispatch(log *zap.Logger, frame resp.Frame) resp.Frame {
	cmd, err := command.Parse(frame)
	if err != nil {
		log.Debug("parse command", zap.Error(err))
		return resp.ErrorFrame(err.Error())
	}
	return cmd.Execute(s.store)
}

func isClosedOrTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, net.ErrClosed)
}
