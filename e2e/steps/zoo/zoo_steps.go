package zoo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	POST(path string, body any) error
	PUT(path string, body any) error
	DELETE(path string) error
	StatusCode() int
	Header(key string) string
	GetResponseField(field string) (any, error)
	DecodeResponse(dst any) error
	Unique(name string) string
	Remember(alias, id string)
	Lookup(alias string) (string, error)
}

// RegisterSteps registers zone and creature step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &zooSteps{tc: tc}

	ctx.Step(`^the zoo API is running$`, steps.apiIsRunning)
	ctx.Step(`^I create a zone "([^"]*)" with description "([^"]*)" and capacity (\d+)$`, steps.createZone)
	ctx.Step(`^I create a creature "([^"]*)" of species "([^"]*)" with size ([0-9.]+), danger level (\d+) and health "([^"]*)" in zone "([^"]*)"$`, steps.createCreature)
	ctx.Step(`^I create a creature "([^"]*)" without a zone$`, steps.createCreatureWithoutZone)
	ctx.Step(`^I set the health of creature "([^"]*)" to "([^"]*)"$`, steps.updateCreatureHealth)
	ctx.Step(`^I delete zone "([^"]*)"$`, steps.deleteZone)
	ctx.Step(`^I delete creature "([^"]*)"$`, steps.deleteCreature)

	ctx.Step(`^the response status should be (\d+)$`, steps.responseStatusShouldBe)
	ctx.Step(`^the response error should be "([^"]*)"$`, steps.responseErrorShouldBe)
	ctx.Step(`^the response should have a Location header$`, steps.responseShouldHaveLocation)
	ctx.Step(`^the creature should belong to zone "([^"]*)"$`, steps.creatureShouldBelongToZone)
	ctx.Step(`^the summary for zone "([^"]*)" should show (\d+) creatures?$`, steps.summaryShouldShow)
}

type zooSteps struct {
	tc TestContext
}

type summary struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CreaturesCount int64  `json:"creaturesCount"`
}

func (s *zooSteps) apiIsRunning(ctx context.Context) error {
	if err := s.tc.GET("/health"); err != nil {
		return err
	}
	if s.tc.StatusCode() != 200 {
		return fmt.Errorf("health check returned %d", s.tc.StatusCode())
	}
	return nil
}

func (s *zooSteps) createZone(ctx context.Context, name, description string, capacity int) error {
	err := s.tc.POST("/api/zones", map[string]any{
		"name":        s.tc.Unique(name),
		"description": description,
		"capacity":    capacity,
	})
	if err != nil {
		return err
	}
	return s.rememberID(name)
}

func (s *zooSteps) createCreature(ctx context.Context, name, species string, size float64, danger int, health, zone string) error {
	zoneID, err := s.tc.Lookup(zone)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(zoneID, 10, 64)
	if err != nil {
		return err
	}
	err = s.tc.POST("/api/creatures", map[string]any{
		"name":         name,
		"species":      species,
		"size":         size,
		"dangerLevel":  danger,
		"healthStatus": health,
		"zoneId":       id,
	})
	if err != nil {
		return err
	}
	return s.rememberID(name)
}

func (s *zooSteps) createCreatureWithoutZone(ctx context.Context, name string) error {
	return s.tc.POST("/api/creatures", map[string]any{
		"name":         name,
		"species":      "Ave",
		"size":         1.0,
		"dangerLevel":  1,
		"healthStatus": "stable",
	})
}

func (s *zooSteps) updateCreatureHealth(ctx context.Context, name, health string) error {
	id, err := s.tc.Lookup(name)
	if err != nil {
		return err
	}
	return s.tc.PUT("/api/creatures/"+id, map[string]any{"healthStatus": health})
}

func (s *zooSteps) deleteZone(ctx context.Context, name string) error {
	id, err := s.tc.Lookup(name)
	if err != nil {
		return err
	}
	return s.tc.DELETE("/api/zones/" + id)
}

func (s *zooSteps) deleteCreature(ctx context.Context, name string) error {
	id, err := s.tc.Lookup(name)
	if err != nil {
		return err
	}
	return s.tc.DELETE("/api/creatures/" + id)
}

func (s *zooSteps) responseStatusShouldBe(ctx context.Context, status int) error {
	if s.tc.StatusCode() != status {
		return fmt.Errorf("expected status %d, got %d", status, s.tc.StatusCode())
	}
	return nil
}

func (s *zooSteps) responseErrorShouldBe(ctx context.Context, code string) error {
	got, err := s.tc.GetResponseField("error")
	if err != nil {
		return err
	}
	if got != code {
		return fmt.Errorf("expected error %q, got %v", code, got)
	}
	return nil
}

func (s *zooSteps) responseShouldHaveLocation(ctx context.Context) error {
	if s.tc.Header("Location") == "" {
		return fmt.Errorf("expected Location header")
	}
	return nil
}

func (s *zooSteps) creatureShouldBelongToZone(ctx context.Context, zone string) error {
	raw, err := s.tc.GetResponseField("zone")
	if err != nil {
		return err
	}
	z, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("zone is not an object: %v", raw)
	}
	if z["name"] != s.tc.Unique(zone) {
		return fmt.Errorf("expected zone %q, got %v", s.tc.Unique(zone), z["name"])
	}
	return nil
}

func (s *zooSteps) summaryShouldShow(ctx context.Context, zone string, count int) error {
	zoneID, err := s.tc.Lookup(zone)
	if err != nil {
		return err
	}
	if err := s.tc.GET("/api/zones/summary"); err != nil {
		return err
	}
	var summaries []summary
	if err := s.tc.DecodeResponse(&summaries); err != nil {
		return err
	}
	for _, sm := range summaries {
		if strconv.FormatInt(sm.ID, 10) != zoneID {
			continue
		}
		if sm.CreaturesCount != int64(count) {
			return fmt.Errorf("expected %d creatures in %s, got %d", count, zone, sm.CreaturesCount)
		}
		return nil
	}
	return fmt.Errorf("zone %s missing from summary", zone)
}

func (s *zooSteps) rememberID(alias string) error {
	if s.tc.StatusCode() != 201 {
		return nil
	}
	raw, err := s.tc.GetResponseField("id")
	if err != nil {
		return err
	}
	n, ok := raw.(float64)
	if !ok {
		return fmt.Errorf("unexpected id %v", raw)
	}
	s.tc.Remember(alias, strconv.FormatInt(int64(n), 10))
	return nil
}
