//go:build integration

package postgres

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"safescout/internal/domain"
	"safescout/pkg/e"
)

//go:embed schema.sql
var schemaSQL string

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if _, err := testPool.Exec(ctx, schemaSQL); err != nil {
		fmt.Println("apply schema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncate(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if _, err := testPool.Exec(context.Background(), `TRUNCATE TABLE `+table); err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
}

func testZone(name string, active bool) *domain.DangerZone {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.DangerZone{
		ID:           uuid.New(),
		Name:         name,
		Center:       domain.Point{Lat: 55.75, Lng: 37.61},
		RadiusMeters: 800,
		RiskLevel:    domain.RiskHigh,
		CrimeRate:    61.5,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestZoneRepo_CreateGet_RoundTrip(t *testing.T) {
	truncate(t, "danger_zones")

	repo := NewZoneRepo(testPool, testLogger())

	zone := testZone("Old Town", true)
	zone.Description = "pickpocketing hotspot"

	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), zone.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Name != zone.Name || got.Center != zone.Center || got.RadiusMeters != zone.RadiusMeters {
		t.Fatalf("round-trip mismatch: got=%+v want=%+v", got, zone)
	}
	if got.Description != "pickpocketing hotspot" {
		t.Fatalf("description mismatch: %q", got.Description)
	}
	if got.RiskLevel != domain.RiskHigh || !got.Active {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestZoneRepo_Get_NotFound(t *testing.T) {
	truncate(t, "danger_zones")

	repo := NewZoneRepo(testPool, testLogger())

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestZoneRepo_Update_NotFound(t *testing.T) {
	truncate(t, "danger_zones")

	repo := NewZoneRepo(testPool, testLogger())

	err := repo.Update(context.Background(), testZone("ghost", true))
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestZoneRepo_List_FiltersAndPaginates(t *testing.T) {
	truncate(t, "danger_zones")

	repo := NewZoneRepo(testPool, testLogger())

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []struct {
		name   string
		risk   domain.RiskLevel
		active bool
	}{
		{"a", domain.RiskHigh, true},
		{"b", domain.RiskHigh, true},
		{"c", domain.RiskLow, true},
		{"d", domain.RiskHigh, false},
	}
	for i, s := range seed {
		zone := testZone(s.name, s.active)
		zone.RiskLevel = s.risk
		zone.CreatedAt = base.Add(time.Duration(i) * time.Second)
		zone.UpdatedAt = zone.CreatedAt
		if err := repo.Create(context.Background(), zone); err != nil {
			t.Fatalf("Create %s: %v", s.name, err)
		}
	}

	active, err := repo.List(context.Background(), domain.ZoneFilter{}, 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("expected 3 active zones got %d", len(active))
	}
	if active[0].CreatedAt.Before(active[1].CreatedAt) {
		t.Fatalf("expected DESC order by created_at")
	}

	all, err := repo.List(context.Background(), domain.ZoneFilter{IncludeInactive: true}, 10, 0)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 zones got %d", len(all))
	}

	high, err := repo.List(context.Background(), domain.ZoneFilter{RiskLevel: domain.RiskHigh}, 10, 0)
	if err != nil {
		t.Fatalf("List high: %v", err)
	}
	if len(high) != 2 {
		t.Fatalf("expected 2 active high zones got %d", len(high))
	}

	page2, err := repo.List(context.Background(), domain.ZoneFilter{}, 2, 2)
	if err != nil {
		t.Fatalf("List page2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("expected 1 zone on page 2 got %d", len(page2))
	}
}

func TestZoneRepo_ListActive_ExcludesInactive(t *testing.T) {
	truncate(t, "danger_zones")

	repo := NewZoneRepo(testPool, testLogger())

	if err := repo.Create(context.Background(), testZone("on", true)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(context.Background(), testZone("off", false)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	zones, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(zones) != 1 || zones[0].Name != "on" {
		t.Fatalf("expected only the active zone, got %+v", zones)
	}
}

func TestSOSRepo_OwnershipScoping(t *testing.T) {
	truncate(t, "sos_alerts")

	repo := NewSOSRepo(testPool, testLogger())

	owner := uuid.New()
	stranger := uuid.New()

	alert := &domain.SOSAlert{
		ID:               uuid.New(),
		UserID:           owner,
		Center:           domain.Point{Lat: 55.75, Lng: 37.61},
		Status:           domain.SOSActive,
		Message:          "help",
		NotifiedContacts: []string{"+1-202-555-0101"},
		CreatedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.Create(context.Background(), alert); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetOwned(context.Background(), alert.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if got.Message != "help" || len(got.NotifiedContacts) != 1 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.ResolvedAt != nil {
		t.Fatalf("expected nil resolved_at on active alert")
	}

	// A different user must see nothing, not a permission error.
	if _, err := repo.GetOwned(context.Background(), alert.ID, stranger); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stranger, got: %v", err)
	}
}

func TestSOSRepo_UpdateOwned_StampsResolution(t *testing.T) {
	truncate(t, "sos_alerts")

	repo := NewSOSRepo(testPool, testLogger())

	owner := uuid.New()
	alert := &domain.SOSAlert{
		ID:        uuid.New(),
		UserID:    owner,
		Center:    domain.Point{Lat: 1, Lng: 2},
		Status:    domain.SOSActive,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := repo.Create(context.Background(), alert); err != nil {
		t.Fatalf("Create: %v", err)
	}

	resolved := time.Now().UTC().Truncate(time.Microsecond)
	alert.Status = domain.SOSResolved
	alert.ResolvedAt = &resolved
	if err := repo.UpdateOwned(context.Background(), alert); err != nil {
		t.Fatalf("UpdateOwned: %v", err)
	}

	got, err := repo.GetOwned(context.Background(), alert.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if got.Status != domain.SOSResolved || got.ResolvedAt == nil || !got.ResolvedAt.Equal(resolved) {
		t.Fatalf("resolution not persisted: %+v", got)
	}
}

func TestSOSRepo_ListByOwner_StatusFilter(t *testing.T) {
	truncate(t, "sos_alerts")

	repo := NewSOSRepo(testPool, testLogger())

	owner := uuid.New()
	for i, status := range []domain.SOSStatus{domain.SOSActive, domain.SOSActive, domain.SOSCancelled} {
		alert := &domain.SOSAlert{
			ID:        uuid.New(),
			UserID:    owner,
			Center:    domain.Point{Lat: 1, Lng: 2},
			Status:    status,
			CreatedAt: time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := repo.Create(context.Background(), alert); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	active, err := repo.ListByOwner(context.Background(), owner, domain.SOSActive, 10, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active alerts got %d", len(active))
	}
	if active[0].CreatedAt.Before(active[1].CreatedAt) {
		t.Fatalf("expected newest first")
	}
}

func TestIncidentRepo_CreateUpdate_RoundTrip(t *testing.T) {
	truncate(t, "incident_reports")

	repo := NewIncidentRepo(testPool, testLogger())

	now := time.Now().UTC().Truncate(time.Microsecond)
	inc := &domain.IncidentReport{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Center:       domain.Point{Lat: 55.75, Lng: 37.61},
		IncidentType: domain.IncidentTheft,
		Description:  "wallet stolen",
		ThreatLevel:  domain.ThreatMedium,
		Status:       domain.IncidentPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(context.Background(), inc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	inc.Status = domain.IncidentVerified
	inc.UpdatedAt = now.Add(time.Minute)
	if err := repo.Update(context.Background(), inc); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(context.Background(), inc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != domain.IncidentVerified || got.Description != "wallet stolen" {
		t.Fatalf("unexpected updated row: %+v", got)
	}
}

func TestLocationRepo_ListByOwner_NewestFirst(t *testing.T) {
	truncate(t, "locations")

	repo := NewLocationRepo(testPool, testLogger())

	owner := uuid.New()
	for i := 0; i < 3; i++ {
		acc := 5.0 + float64(i)
		sample := &domain.LocationSample{
			ID:        uuid.New(),
			UserID:    owner,
			Center:    domain.Point{Lat: 10 + float64(i), Lng: 20},
			Accuracy:  &acc,
			Timestamp: time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := repo.Append(context.Background(), sample); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	samples, err := repo.ListByOwner(context.Background(), owner, 2, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples got %d", len(samples))
	}
	if samples[0].Timestamp.Before(samples[1].Timestamp) {
		t.Fatalf("expected newest first")
	}
	if samples[0].Accuracy == nil {
		t.Fatalf("accuracy lost in round trip")
	}
}

func TestChatRepo_ListByOwner_OldestFirst(t *testing.T) {
	truncate(t, "chat_messages")

	repo := NewChatRepo(testPool, testLogger())

	owner := uuid.New()
	senders := []domain.ChatSender{domain.SenderUser, domain.SenderAssistant}
	for i, sender := range senders {
		msg := &domain.ChatMessage{
			ID:        uuid.New(),
			UserID:    owner,
			Message:   fmt.Sprintf("msg-%d", i),
			Sender:    sender,
			Timestamp: time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := repo.Append(context.Background(), msg); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	msgs, err := repo.ListByOwner(context.Background(), owner, 10, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages got %d", len(msgs))
	}
	if msgs[0].Sender != domain.SenderUser || msgs[1].Sender != domain.SenderAssistant {
		t.Fatalf("expected conversation order, got %+v", msgs)
	}
}

func TestZoneEntryRepo_SaveAndListRecent(t *testing.T) {
	truncate(t, "zone_entries")

	repo := NewZoneEntryRepo(testPool, testLogger())

	for i := 0; i < 3; i++ {
		ev := domain.ZoneEntryEvent{
			UserID:         uuid.New(),
			ZoneID:         uuid.New(),
			Center:         domain.Point{Lat: 1, Lng: 2},
			DistanceMeters: 100 + float64(i),
			EnteredAt:      time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := repo.Save(context.Background(), ev); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	entries, err := repo.ListRecent(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries got %d", len(entries))
	}
	if entries[0].EnteredAt.Before(entries[1].EnteredAt) {
		t.Fatalf("expected newest first")
	}
}
