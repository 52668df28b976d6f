package resolver

import (
	"context"

	"github.com/google/uuid"

	appconfig "astroshield/config"
	"astroshield/logger"
	"astroshield/models"
	"astroshield/physics"
)

// Service is the top-level simulation facade the API layer calls. It owns
// the resolvers and the physics engine; all state apart from the source
// caches is per-request.
type Service struct {
	cfg       *appconfig.Config
	engine    *physics.Engine
	orbits    *physics.Simulator
	neo       *NEOResolver
	env       *EnvironmentResolver
	neoSource NEOSource
	envSource EnvironmentSource
	log       *logger.Log
}

// NewService wires the resolvers around the provided live sources. Either
// source may be nil, which disables its live path and serves the builtin
// datasets instead.
func NewService(cfg *appconfig.Config, neoSource NEOSource, envSource EnvironmentSource) *Service {
	consts := physics.DefaultConstants()
	return &Service{
		cfg:       cfg,
		engine:    physics.NewEngine(consts),
		orbits:    physics.NewSimulator(consts),
		neo:       NewNEOResolver(neoSource, consts.AUKilometers, cfg.Simulation.DefaultAsteroidID),
		env:       NewEnvironmentResolver(envSource, cfg.Environment.TsunamiElevationThresholdM),
		neoSource: neoSource,
		envSource: envSource,
		log:       logger.GetLogger(),
	}
}

// Simulate runs one complete impact and deflection scenario: reference
// resolution, energy and ground effects, site context, and the orbital
// deflection geometry, merged into a single response record. Zero-valued
// request scalars take the reference object's values; absent coordinates
// take the configured defaults.
func (s *Service) Simulate(ctx context.Context, req models.SimulationRequest) (models.SimulationResponse, error) {
	reference := s.neo.Resolve(ctx, req.AsteroidID)

	diameterM := req.DiameterM
	if diameterM <= 0 {
		diameterM = reference.DiameterM
	}
	velocityKMS := req.VelocityKMS
	if velocityKMS <= 0 {
		velocityKMS = reference.VelocityKMS
	}
	lat := req.ImpactLat
	if !req.LatProvided {
		lat = s.cfg.Simulation.DefaultLatitude
	}
	lon := req.ImpactLon
	if !req.LonProvided {
		lon = s.cfg.Simulation.DefaultLongitude
	}

	energy, err := s.engine.KineticEnergy(reference.MassKG, velocityKMS, req.DeflectionDeltaV, &diameterM, reference.DensityKGM3)
	if err != nil {
		return models.SimulationResponse{}, err
	}
	reference.MassKG = &energy.MassKG

	effects := models.ImpactEffects{
		CraterDiameterKM: s.engine.CraterDiameter(energy.EnergyMT),
		SeismicMagnitude: s.engine.SeismicMagnitude(energy.EnergyMT),
	}

	site := s.env.Resolve(ctx, lat, lon)
	environment := models.EnvironmentResult{
		ElevationM:      site.ElevationM,
		IsCoastalZone:   site.IsCoastalZone,
		SeismicZoneRisk: site.SeismicZoneRisk,
		TsunamiRisk:     s.env.TsunamiRisk(site.ElevationM, site.IsCoastalZone),
		TectonicSummary: site.TectonicSummary,
	}

	solution := s.orbits.SimulateOrbitalChange(reference.OrbitalElements, req.DeflectionDeltaV, s.cfg.Simulation.SamplePoints)
	solution.WithinHazardDistance = solution.DeflectedMOIDKM < s.cfg.Simulation.MOIDThresholdKM

	simulationID := uuid.New().String()
	logger.IncrementSimulation()
	s.log.WithComponent("simulation_service").WithFields(logger.Fields{
		"simulation_id": simulationID,
		"asteroid_id":   reference.FriendlyID,
		"source":        reference.Source,
		"energy_mt":     energy.EnergyMT,
	}).Info("simulation completed")

	return models.SimulationResponse{
		SimulationID: simulationID,
		Inputs: models.SimulationInputs{
			DiameterM:        diameterM,
			VelocityKMS:      velocityKMS,
			DeflectionDeltaV: req.DeflectionDeltaV,
			ImpactLat:        lat,
			ImpactLon:        lon,
			AsteroidID:       reference.FriendlyID,
		},
		NEOReference:    reference,
		Energy:          energy,
		ImpactEffects:   effects,
		Environment:     environment,
		OrbitalSolution: solution,
	}, nil
}

// ListCatalog returns the catalog listing with the limit clamped to the
// service bounds.
func (s *Service) ListCatalog(ctx context.Context, limit int) []models.CatalogEntry {
	return s.neo.ListCatalog(ctx, limit)
}

// ResolveNEO exposes reference resolution for collaborators outside the
// simulation path.
func (s *Service) ResolveNEO(ctx context.Context, friendlyID string) models.NEOData {
	return s.neo.Resolve(ctx, friendlyID)
}
