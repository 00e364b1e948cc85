package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "vet-clinic/docs"
	"vet-clinic/internal/adapters/capabilities/roles"
	mem "vet-clinic/internal/adapters/storage/memory"
	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/clinics"
	"vet-clinic/internal/domain/medicines"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/users"
	"vet-clinic/internal/domain/vaccines"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/ports/auth"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Tokens auth.TokenManager
	Hasher auth.PasswordHasher

	// Opcional: nil => roles.DefaultTable().
	Resolver capabilities.CapabilitiesResolver

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	AllowedOrigins []string
	RequestTimeout time.Duration // 0 => sin timeout
	Workers        int           // 0 => sin límite

	// nil => logger.Nop().
	AccessLogger logger.Logger
	ErrorLogger  logger.Logger
}

type repos struct {
	users         users.Repository
	breeds        breeds.Repository
	clinics       clinics.Repository
	pets          pets.Repository
	vaccines      vaccines.VaccineRepository
	vaccinations  vaccines.VaccinationRepository
	medicines     medicines.MedicineRepository
	takes         medicines.TakeRepository
	analysisTypes analyses.TypeRepository
	analyses      analyses.Repository
	appointments  appointments.Repository
}

func postgresRepos(db *sql.DB) repos {
	return repos{
		users:         pg.NewUsersRepo(db),
		breeds:        pg.NewBreedsRepo(db),
		clinics:       pg.NewClinicsRepo(db),
		pets:          pg.NewPetsRepo(db),
		vaccines:      pg.NewVaccinesRepo(db),
		vaccinations:  pg.NewVaccinationsRepo(db),
		medicines:     pg.NewMedicinesRepo(db),
		takes:         pg.NewTakesRepo(db),
		analysisTypes: pg.NewAnalysisTypesRepo(db),
		analyses:      pg.NewAnalysesRepo(db),
		appointments:  pg.NewAppointmentsRepo(db),
	}
}

func memoryRepos() repos {
	s := mem.NewStore()
	return repos{
		users:         mem.NewUserRepo(s),
		breeds:        mem.NewBreedRepo(s),
		clinics:       mem.NewClinicRepo(s),
		pets:          mem.NewPetRepo(s),
		vaccines:      mem.NewVaccineRepo(s),
		vaccinations:  mem.NewVaccinationRepo(s),
		medicines:     mem.NewMedicineRepo(s),
		takes:         mem.NewTakeRepo(s),
		analysisTypes: mem.NewAnalysisTypeRepo(s),
		analyses:      mem.NewAnalysisRepo(s),
		appointments:  mem.NewAppointmentRepo(s),
	}
}

func NewRouter(opts Options) http.Handler {
	accessLog := opts.AccessLogger
	if accessLog == nil {
		accessLog = logger.Nop()
	}
	errorLog := opts.ErrorLogger
	if errorLog == nil {
		errorLog = logger.Nop()
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = roles.NewResolver(roles.DefaultTable())
	}

	var rp repos
	if opts.DB != nil {
		rp = postgresRepos(opts.DB)
	} else {
		rp = memoryRepos()
	}

	// Services por módulo
	usersSvc := users.NewService(rp.users, opts.Hasher, opts.Tokens)
	breedsSvc := breeds.NewService(rp.breeds)
	clinicsSvc := clinics.NewService(rp.clinics)
	petsSvc := pets.NewService(rp.pets)
	vaccinesSvc := vaccines.NewService(rp.vaccines, rp.vaccinations)
	medicinesSvc := medicines.NewService(rp.medicines, rp.takes)
	analysesSvc := analyses.NewService(rp.analysisTypes, rp.analyses)
	appointmentsSvc := appointments.NewService(rp.appointments)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(errorLog))
	r.Use(middleware.AccessLog(accessLog))
	r.Use(middleware.Recover)
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}
	if opts.Workers > 0 {
		r.Use(chimw.Throttle(opts.Workers))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.AuthContext(usersSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth)

		breeds.RegisterRoutes(pr, breedsSvc, resolver)
		clinics.RegisterRoutes(pr, clinicsSvc, resolver)
		pets.RegisterRoutes(pr, petsSvc, resolver)
		vaccines.RegisterRoutes(pr, vaccinesSvc, resolver)
		medicines.RegisterRoutes(pr, medicinesSvc, resolver)
		analyses.RegisterRoutes(pr, analysesSvc, resolver)
		appointments.RegisterRoutes(pr, appointmentsSvc, resolver)
	})

	return r
}
