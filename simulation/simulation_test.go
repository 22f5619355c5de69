package simulation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/landersim/config"
	"github.com/sarchlab/landersim/datarecording"
	"github.com/sarchlab/landersim/lander"
	"github.com/sarchlab/landersim/recording"
)

func gentleConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 1
	cfg.Recording.Enabled = false
	cfg.Override = config.Override{
		MaxAttempts:  5,
		Gravity:      0.02,
		InitialSpeed: 0.5,
	}

	return cfg
}

func harshConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 1
	cfg.Recording.Enabled = false
	cfg.Override = config.Override{
		MaxAttempts:  1,
		Gravity:      0.3,
		InitialSpeed: 5,
	}

	return cfg
}

var _ = Describe("Builder", func() {
	It("should build an idle controller", func() {
		s := MakeBuilder().
			WithoutMonitoring().
			WithoutRecording().
			WithLogOutput(nil).
			WithSeed(42).
			Build()

		snapshot := s.GetController().Snapshot()
		Expect(snapshot.State).To(Equal(lander.Idle))
		Expect(snapshot.GroundY).To(Equal(400.0))
		Expect(snapshot.Limits.MaxAttempts).To(BeNumerically(">=", 1))
		Expect(snapshot.Limits.MaxAttempts).To(BeNumerically("<=", 30))
		Expect(s.GetDataRecorder()).To(BeNil())
		Expect(s.GetMonitor()).To(BeNil())
		Expect(s.Seed()).To(Equal(int64(42)))
	})

	It("should draw the same run from the same seed", func() {
		build := func() lander.Snapshot {
			return MakeBuilder().
				WithoutMonitoring().
				WithoutRecording().
				WithLogOutput(nil).
				WithSeed(42).
				Build().
				GetController().
				Snapshot()
		}

		Expect(build()).To(Equal(build()))
	})

	It("should panic if a port is set without monitoring", func() {
		Expect(func() {
			MakeBuilder().
				WithoutMonitoring().
				WithoutRecording().
				WithMonitorPort(8080).
				Build()
		}).To(Panic())
	})

	It("should panic on an invalid configuration", func() {
		cfg := config.Default()
		cfg.Physics.TickInterval = 0

		Expect(func() {
			MakeBuilder().WithConfig(cfg).WithoutMonitoring().Build()
		}).To(Panic())
	})
})

var _ = Describe("Simulation", func() {
	var s *Simulation

	AfterEach(func() {
		s.Terminate()
	})

	It("should apply the forced values after every setup", func() {
		s = MakeBuilder().
			WithConfig(gentleConfig()).
			WithoutMonitoring().
			WithLogOutput(nil).
			Build()

		check := func() {
			snapshot := s.GetController().Snapshot()
			Expect(snapshot.Limits.MaxAttempts).To(Equal(5))
			Expect(snapshot.Params).To(Equal(lander.SimulationParameters{
				Gravity:      0.02,
				InitialSpeed: 0.5,
			}))
		}

		check()
		s.Setup()
		check()
	})

	It("should land a gentle lander on the first attempt", func() {
		s = MakeBuilder().
			WithConfig(gentleConfig()).
			WithoutMonitoring().
			WithLogOutput(nil).
			Build()

		snapshot, err := s.RunOnce()

		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.State).To(Equal(lander.Halted))
		Expect(snapshot.Limits.AttemptsRun).To(Equal(1))
		Expect(snapshot.Limits.Successes).To(Equal(1))
		Expect(snapshot.Lander.Status).To(Equal(lander.Landed))
		Expect(snapshot.Lander.Y).To(Equal(400.0))
		Expect(s.GetEngine().CurrentTime()).To(BeNumerically(">", 0))
	})

	It("should exhaust the attempts of a harsh run", func() {
		s = MakeBuilder().
			WithConfig(harshConfig()).
			WithoutMonitoring().
			WithLogOutput(nil).
			Build()

		snapshot, err := s.RunOnce()

		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.State).To(Equal(lander.Exhausted))
		Expect(snapshot.Limits.AttemptsRun).To(Equal(1))
		Expect(snapshot.Limits.Successes).To(Equal(0))
		Expect(snapshot.Lander.Status).To(Equal(lander.Crashed))
		Expect(snapshot.Params.Gravity).To(BeNumerically("~", 0.27, 1e-9))
		Expect(snapshot.Params.InitialSpeed).To(BeNumerically("~", 4.25, 1e-9))
	})

	It("should record the attempts", func() {
		cfg := harshConfig()
		cfg.Override.MaxAttempts = 2
		cfg.Recording.Enabled = true
		cfg.Recording.OutputFile = filepath.Join(GinkgoT().TempDir(), "run")

		s = MakeBuilder().
			WithConfig(cfg).
			WithoutMonitoring().
			WithLogOutput(nil).
			Build()

		_, err := s.RunOnce()
		Expect(err).NotTo(HaveOccurred())
		s.GetDataRecorder().Flush()

		Expect(s.OutputPath()).To(Equal(cfg.Recording.OutputFile + ".sqlite3"))

		reader, err := datarecording.NewReader(s.OutputPath())
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		reader.MapTable(recording.AttemptTableName, recording.AttemptEntry{})
		attempts, total, err := reader.Query(context.Background(),
			recording.AttemptTableName,
			datarecording.QueryParams{OrderBy: "Attempt"})

		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(2))
		Expect(attempts[0].(*recording.AttemptEntry).Outcome).
			To(Equal("crashed"))
		Expect(attempts[1].(*recording.AttemptEntry).Attempt).To(Equal(2))
	})

	It("should write the execution record on terminate", func() {
		cfg := harshConfig()
		cfg.Recording.Enabled = true
		cfg.Recording.OutputFile = filepath.Join(GinkgoT().TempDir(), "run")

		s = MakeBuilder().
			WithConfig(cfg).
			WithoutMonitoring().
			WithLogOutput(nil).
			Build()

		_, err := s.RunOnce()
		Expect(err).NotTo(HaveOccurred())
		endTime := s.GetEngine().CurrentTime()
		s.Terminate()

		reader, err := datarecording.NewReader(s.OutputPath())
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		reader.MapTable(datarecording.ExecTableName, datarecording.ExecInfo{})
		entries, _, err := reader.Query(context.Background(),
			datarecording.ExecTableName,
			datarecording.QueryParams{
				Where:   "Property IN (?, ?)",
				Args:    []any{"Seed", "End Virtual Time"},
				OrderBy: "Property",
			})

		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].(*datarecording.ExecInfo).Value).
			To(Equal(strconv.FormatFloat(float64(endTime), 'f', -1, 64)))
		Expect(entries[1].(*datarecording.ExecInfo).Value).To(Equal("1"))

		reader.MapTable(recording.RunTableName, recording.RunEntry{})
		_, runs, err := reader.Query(context.Background(),
			recording.RunTableName, datarecording.QueryParams{})
		Expect(err).NotTo(HaveOccurred())
		Expect(runs).To(Equal(1))
	})

	It("should land a floor run on the default ground", func() {
		cfg := config.Default()
		cfg.Seed = 9
		cfg.Recording.Enabled = false
		cfg.Override = config.Override{
			MaxAttempts:  1,
			Gravity:      0.02,
			InitialSpeed: 0.5,
		}

		s = MakeBuilder().
			WithConfig(cfg).
			WithoutMonitoring().
			WithLogOutput(nil).
			Build()

		snapshot, err := s.RunOnce()

		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.State).To(Equal(lander.Halted))
		Expect(snapshot.Lander.VelocityY).To(BeNumerically("<=", 4))
	})

	It("should register a component only once", func() {
		s = MakeBuilder().
			WithoutMonitoring().
			WithoutRecording().
			WithLogOutput(nil).
			Build()

		Expect(s.GetComponentByName("Controller")).
			To(BeIdenticalTo(s.GetController()))
		Expect(s.Components()).To(HaveLen(1))
		Expect(s.GetComponentByName("Missing")).To(BeNil())
		Expect(func() { s.RegisterComponent(s.GetController()) }).To(Panic())
	})

	It("should wake the runner from the monitor", func() {
		s = MakeBuilder().
			WithConfig(gentleConfig()).
			WithLogOutput(nil).
			Build()

		req := httptest.NewRequest(http.MethodPost, "/api/start", nil)
		rec := httptest.NewRecorder()
		s.GetMonitor().Router().ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(s.wake).To(HaveLen(1))

		s.Wake()
		Expect(s.wake).To(HaveLen(1))
	})

	It("should run the engine while serving", func() {
		s = MakeBuilder().
			WithConfig(gentleConfig()).
			WithLogOutput(nil).
			Build()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() {
			done <- s.Serve(ctx)
		}()

		s.GetEngine().Exclusive(s.GetController().Start)
		s.Wake()

		Eventually(s.GetController().State).Should(Equal(lander.Halted))

		cancel()
		Eventually(done).Should(Receive(BeNil()))
	})
})
