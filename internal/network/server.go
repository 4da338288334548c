package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/deques/internal/core"
	"github.com/vskvj3/deques/internal/utils"
)

// Server exposes one deque to TCP clients. Requests and responses are
// MessagePack maps; requests from all connections are applied one at a time.
type Server struct {
	CommandHandler *core.CommandHandler
	Port           string

	mu       sync.Mutex
	logger   *utils.Logger
	listener net.Listener

	connMu sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

func NewServer(port string, handler *core.CommandHandler, logger *utils.Logger) (*Server, error) {
	if handler == nil || handler.Deque == nil {
		return nil, fmt.Errorf("deque is not initialized")
	}
	logger.Info("TCP server initialized on port " + port)
	return &Server{
		CommandHandler: handler,
		Port:           port,
		logger:         logger,
		conns:          make(map[net.Conn]struct{}),
	}, nil
}

// Listen binds the configured port, falling back to a random one
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		s.logger.Warn("Port " + s.Port + " unavailable. Selecting a random port...")
		listener, err = net.Listen("tcp", ":0")
		if err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
	}
	s.listener = listener
	s.logger.Info("Server is listening on " + listener.Addr().String())
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts client connections until the listener is closed
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error("Error accepting connection: " + err.Error())
			continue
		}
		if !s.track(conn) {
			conn.Close()
			return nil
		}
		s.logger.Info("Accepted client: " + conn.RemoteAddr().String())
		go s.HandleConnection(conn)
	}
}

// Close stops accepting connections and closes every open client session.
func (s *Server) Close() error {
	s.connMu.Lock()
	s.closed = true
	for conn := range s.conns {
		conn.Close()
	}
	s.connMu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

// track registers an accepted connection; it fails once the server is closed.
func (s *Server) track(conn net.Conn) bool {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	delete(s.conns, conn)
}

// Handle an incoming client connection
func (s *Server) HandleConnection(conn net.Conn) {
	defer func() {
		s.logger.Info("Client disconnected: " + conn.RemoteAddr().String())
		s.untrack(conn)
		conn.Close()
	}()

	decoder := msgpack.NewDecoder(bufio.NewReader(conn))
	encoder := msgpack.NewEncoder(conn)

	for {
		var request map[string]interface{}
		if err := decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info("Client closed the connection: " + conn.RemoteAddr().String())
			} else {
				s.logger.Error("Error reading from client: " + err.Error())
			}
			return
		}
		s.logger.Debug("Received request from client: " + conn.RemoteAddr().String())

		s.mu.Lock()
		response := s.CommandHandler.HandleCommand(request)
		s.mu.Unlock()

		if err := encoder.Encode(response); err != nil {
			s.logger.Error("Failed to send response: " + err.Error())
			return
		}
	}
}
