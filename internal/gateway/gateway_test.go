package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	cardeav1 "github.com/cardea-access/cardea/api/cardea/v1"
	"github.com/cardea-access/cardea/internal/cardea/actuator"
	"github.com/cardea-access/cardea/internal/cardea/engine"
	"github.com/cardea-access/cardea/internal/cardea/store/memory"
	"github.com/cardea-access/cardea/internal/cardea/types"
	"github.com/cardea-access/cardea/internal/gateway"
	"github.com/cardea-access/cardea/internal/hardware"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingNotifier struct {
	mu        sync.Mutex
	decisions []types.Decision
	faults    []error
}

func (n *recordingNotifier) Decision(d types.Decision) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.decisions = append(n.decisions, d)
}

func (n *recordingNotifier) Fault(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.faults = append(n.faults, err)
}

type fixture struct {
	subjects *memory.SubjectStore
	relay    *hardware.FakeRelay
	act      *actuator.Actuator
	notifier *recordingNotifier
	client   cardeav1.RemoteTriggerClient
}

// newTestGateway stands up the gRPC server over an in-memory transport and
// returns a connected client.
func newTestGateway(t *testing.T) *fixture {
	t.Helper()

	fx := &fixture{
		subjects: memory.NewSubjectStore(),
		relay:    hardware.NewFakeRelay(),
		notifier: &recordingNotifier{},
	}

	eng := engine.New(fx.subjects, memory.NewDecisionStore(),
		types.Door{ID: "door-main"}, 2*time.Second, discardLogger())
	fx.act = actuator.New(fx.relay, 50*time.Millisecond, 500*time.Millisecond, discardLogger())
	t.Cleanup(func() { fx.act.Close() })

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	cardeav1.RegisterRemoteTriggerServer(srv, gateway.New(eng, fx.act, fx.notifier, discardLogger()))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	fx.client = cardeav1.NewRemoteTriggerClient(conn)
	return fx
}

func TestUnlock_AllowedSubject_EnergizesRelay(t *testing.T) {
	fx := newTestGateway(t)
	fx.subjects.AddSubject(types.Subject{ID: "sub-1", Role: types.RoleAdmin, Active: true})

	resp, err := fx.client.Unlock(context.Background(), &cardeav1.UnlockRequest{
		SubjectId: "sub-1",
		DoorId:    "door-main",
	})
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if !resp.GetAllowed() {
		t.Fatalf("expected allow, got reason %s", resp.GetReason())
	}
	if resp.GetDecisionId() == "" {
		t.Error("expected a decision id")
	}
	if resp.GetServerTime() == "" {
		t.Error("expected a server time")
	}
	if fx.relay.Level() != hardware.High {
		t.Error("expected relay high after allowed unlock")
	}
}

func TestUnlock_DeniedSubject_LeavesRelayAlone(t *testing.T) {
	fx := newTestGateway(t)
	fx.subjects.AddSubject(types.Subject{ID: "sub-1", Role: types.RoleAdmin, Active: false})

	resp, err := fx.client.Unlock(context.Background(), &cardeav1.UnlockRequest{
		SubjectId: "sub-1",
		DoorId:    "door-main",
	})
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if resp.GetAllowed() {
		t.Fatal("expected deny for inactive subject")
	}
	if resp.GetReason() != "INACTIVE_SUBJECT" {
		t.Errorf("expected reason=INACTIVE_SUBJECT, got %s", resp.GetReason())
	}
	if got := len(fx.relay.Writes()); got != 0 {
		t.Errorf("expected no relay writes, got %d", got)
	}
}

func TestUnlock_WrongDoor_Denied(t *testing.T) {
	fx := newTestGateway(t)
	fx.subjects.AddSubject(types.Subject{ID: "sub-1", Role: types.RoleAdmin, Active: true})

	resp, err := fx.client.Unlock(context.Background(), &cardeav1.UnlockRequest{
		SubjectId: "sub-1",
		DoorId:    "door-elsewhere",
	})
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if resp.GetAllowed() {
		t.Fatal("expected deny for unknown door")
	}
	if resp.GetReason() != "UNKNOWN_DOOR" {
		t.Errorf("expected reason=UNKNOWN_DOOR, got %s", resp.GetReason())
	}
}

func TestUnlock_MissingSubjectID_InvalidArgument(t *testing.T) {
	fx := newTestGateway(t)

	_, err := fx.client.Unlock(context.Background(), &cardeav1.UnlockRequest{DoorId: "door-main"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestUnlock_HardwareFault_IsInternalNotDenial(t *testing.T) {
	fx := newTestGateway(t)
	fx.subjects.AddSubject(types.Subject{ID: "sub-1", Role: types.RoleAdmin, Active: true})
	fx.relay.SetFailWrites(true)

	_, err := fx.client.Unlock(context.Background(), &cardeav1.UnlockRequest{
		SubjectId: "sub-1",
		DoorId:    "door-main",
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal for a relay fault, got %v", err)
	}

	fx.notifier.mu.Lock()
	defer fx.notifier.mu.Unlock()
	if len(fx.notifier.faults) != 1 {
		t.Errorf("expected 1 fault on the alarm path, got %d", len(fx.notifier.faults))
	}
	// The decision itself was an allow and was still published.
	if len(fx.notifier.decisions) != 1 || !fx.notifier.decisions[0].Allowed {
		t.Errorf("expected the allowed decision to be published, got %+v", fx.notifier.decisions)
	}
}

func TestRelock_EndsActiveWindow(t *testing.T) {
	fx := newTestGateway(t)
	fx.subjects.AddSubject(types.Subject{ID: "sub-1", Role: types.RoleAdmin, Active: true})

	if _, err := fx.client.Unlock(context.Background(), &cardeav1.UnlockRequest{
		SubjectId: "sub-1", DoorId: "door-main",
	}); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	resp, err := fx.client.Relock(context.Background(), &cardeav1.RelockRequest{DoorId: "door-main"})
	if err != nil {
		t.Fatalf("Relock: %v", err)
	}
	if !resp.GetOk() {
		t.Fatal("expected ok")
	}
	if st, _ := fx.act.State(); st != actuator.Idle {
		t.Errorf("expected Idle after relock, got %s", st)
	}
	if fx.relay.Level() != hardware.Low {
		t.Error("expected relay low after relock")
	}
}

func TestRelock_UnknownDoor_NotFound(t *testing.T) {
	fx := newTestGateway(t)

	_, err := fx.client.Relock(context.Background(), &cardeav1.RelockRequest{DoorId: "door-elsewhere"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

// relayFirstNotifier records whether the relay was already energized when
// the decision publish happened.
type relayFirstNotifier struct {
	relay        *hardware.FakeRelay
	highAtNotify bool
	notified     bool
}

func (n *relayFirstNotifier) Decision(d types.Decision) {
	if d.Allowed {
		n.notified = true
		n.highAtNotify = n.relay.Level() == hardware.High
	}
}

func (n *relayFirstNotifier) Fault(error) {}

func TestUnlock_ActuatesBeforeNotifying(t *testing.T) {
	subjects := memory.NewSubjectStore()
	subjects.AddSubject(types.Subject{ID: "sub-1", Role: types.RoleAdmin, Active: true})
	eng := engine.New(subjects, memory.NewDecisionStore(),
		types.Door{ID: "door-main"}, 2*time.Second, discardLogger())

	relay := hardware.NewFakeRelay()
	act := actuator.New(relay, 50*time.Millisecond, 500*time.Millisecond, discardLogger())
	defer act.Close()

	notifier := &relayFirstNotifier{relay: relay}
	srv := gateway.New(eng, act, notifier, discardLogger())

	resp, err := srv.Unlock(context.Background(), &cardeav1.UnlockRequest{
		SubjectId: "sub-1",
		DoorId:    "door-main",
	})
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if !resp.GetAllowed() {
		t.Fatalf("expected allow, got reason %s", resp.GetReason())
	}
	if !notifier.notified {
		t.Fatal("expected the allowed decision to be published")
	}
	if !notifier.highAtNotify {
		t.Fatal("relay must be energized before the decision publish")
	}
}
