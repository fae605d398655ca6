// Package gateway exposes the remote trigger gRPC API. It sits in front
// of the decision engine and actuator so that remote unlocks follow the
// exact same authorization path as credentials presented at a reader.
package gateway

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cardeav1 "github.com/cardea-access/cardea/api/cardea/v1"
	"github.com/cardea-access/cardea/internal/cardea/actuator"
	"github.com/cardea-access/cardea/internal/cardea/engine"
	"github.com/cardea-access/cardea/internal/cardea/listener"
)

type Server struct {
	cardeav1.UnimplementedRemoteTriggerServer

	engine   *engine.Engine
	act      *actuator.Actuator
	notifier listener.Notifier
	logger   *slog.Logger
}

func New(eng *engine.Engine, act *actuator.Actuator, notifier listener.Notifier, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: eng, act: act, notifier: notifier, logger: logger}
}

// Unlock runs a remote trigger through the decision engine and, when
// allowed, energizes the relay. A hardware fault after an allowed
// decision is surfaced as an error rather than a denied response so the
// caller can tell policy apart from a broken relay.
func (s *Server) Unlock(ctx context.Context, req *cardeav1.UnlockRequest) (*cardeav1.UnlockResponse, error) {
	if req.GetSubjectId() == "" {
		return nil, status.Error(codes.InvalidArgument, "subject_id is required")
	}
	if req.GetDoorId() == "" {
		return nil, status.Error(codes.InvalidArgument, "door_id is required")
	}

	d := s.engine.DecideSubject(ctx, req.GetSubjectId(), req.GetDoorId())

	resp := &cardeav1.UnlockResponse{
		Allowed:    d.Allowed,
		Reason:     string(d.Reason),
		DecisionId: d.ID,
		ServerTime: d.DecidedAt.Format(time.RFC3339Nano),
	}

	if !d.Allowed {
		if s.notifier != nil {
			s.notifier.Decision(d)
		}
		s.logger.Info("remote unlock denied",
			"subject_id", req.GetSubjectId(),
			"door_id", req.GetDoorId(),
			"reason", d.Reason)
		return resp, nil
	}

	// Actuate first; the alarm publish must not sit between an allowed
	// decision and the relay.
	actErr := s.act.Unlock()
	if s.notifier != nil {
		s.notifier.Decision(d)
	}
	if actErr != nil {
		s.logger.Error("remote unlock actuation failed", "error", actErr)
		if s.notifier != nil {
			s.notifier.Fault(actErr)
		}
		return nil, status.Error(codes.Internal, "relay actuation failed")
	}

	s.logger.Info("remote unlock granted",
		"subject_id", req.GetSubjectId(),
		"door_id", req.GetDoorId(),
		"decision_id", d.ID)
	return resp, nil
}

// Relock forces the relay back to the locked state ahead of the
// auto-relock timer. Relocking an already idle door succeeds.
func (s *Server) Relock(ctx context.Context, req *cardeav1.RelockRequest) (*cardeav1.RelockResponse, error) {
	if req.GetDoorId() == "" {
		return nil, status.Error(codes.InvalidArgument, "door_id is required")
	}
	if req.GetDoorId() != s.engine.Door().ID {
		return nil, status.Error(codes.NotFound, "unknown door")
	}

	if err := s.act.Relock(); err != nil {
		s.logger.Error("remote relock failed", "error", err)
		if s.notifier != nil {
			s.notifier.Fault(err)
		}
		return nil, status.Error(codes.Internal, "relay actuation failed")
	}

	return &cardeav1.RelockResponse{
		Ok:         true,
		ServerTime: time.Now().UTC().Format(time.RFC3339Nano),
	}, nil
}
