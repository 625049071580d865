package session_test

import (
	"bytes"
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/step"
)

func drain(run *session.Run) []step.Event {
	var events []step.Event
	for {
		e, ok := run.Next()
		if !ok {
			return events
		}
		events = append(events, e)
	}
}

func countKind(events []step.Event, k step.Kind) int {
	n := 0
	for _, e := range events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

var _ = Describe("Session", func() {
	var (
		rec *step.Recorder
		s   *session.Session
	)

	BeforeEach(func() {
		rec = step.NewRecorder()
		s = session.New(
			session.WithEmitter(rec),
			session.WithGenerator(array.NewGenerator(42)),
			session.WithSleep(step.NoSleep),
		)
	})

	It("starts idle with an empty array", func() {
		Expect(s.State()).To(Equal(session.Idle))
		Expect(s.Values()).To(BeEmpty())
		Expect(s.ID()).NotTo(BeEmpty())
	})

	It("generates 50 values in [1,100] by default", func() {
		values, err := s.Generate()
		Expect(err).NotTo(HaveOccurred())
		Expect(values).To(HaveLen(50))
		for _, v := range values {
			Expect(v).To(BeNumerically(">=", 1))
			Expect(v).To(BeNumerically("<=", 100))
		}
		Expect(s.Values()).To(Equal(values))
	})

	Context("while sorting", func() {
		var run *session.Run

		BeforeEach(func() {
			Expect(s.SetArray([]int{5, 3, 8, 1})).To(Succeed())
			var err error
			run, err = s.Begin("bubble")
			Expect(err).NotTo(HaveOccurred())
			_, ok := run.Next()
			Expect(ok).To(BeTrue())
		})

		AfterEach(func() {
			run.Close()
		})

		It("reports Sorting", func() {
			Expect(s.State()).To(Equal(session.Sorting))
		})

		It("rejects generate without touching the array", func() {
			before := s.Values()
			_, err := s.Generate()
			Expect(err).To(MatchError(session.ErrBusy))
			Expect(s.Values()).To(Equal(before))
			Expect(s.State()).To(Equal(session.Sorting))
		})

		It("rejects a second start", func() {
			Expect(s.Start(context.Background(), "quick")).To(MatchError(session.ErrBusy))
			_, err := s.Begin("merge")
			Expect(err).To(MatchError(session.ErrBusy))
			Expect(s.State()).To(Equal(session.Sorting))
		})

		It("rejects loading a new array", func() {
			Expect(s.SetArray([]int{1})).To(MatchError(session.ErrBusy))
			Expect(s.Values()).To(HaveLen(4))
		})

		It("returns to idle when abandoned", func() {
			run.Close()
			Expect(s.State()).To(Equal(session.Idle))
			_, ok := run.Next()
			Expect(ok).To(BeFalse())
		})
	})

	It("rejects unknown algorithms and stays idle", func() {
		_, err := s.Begin("bogo")
		Expect(err).To(MatchError(sorting.ErrUnknownAlgorithm))
		Expect(s.State()).To(Equal(session.Idle))
	})

	It("ends every run with exactly one Sorted, then returns to idle", func() {
		for _, name := range s.Algorithms() {
			Expect(s.SetArray([]int{9, 4, 7, 1, 8, 2})).To(Succeed())
			run, err := s.Begin(name)
			Expect(err).NotTo(HaveOccurred())

			var events []step.Event
			for {
				e, ok := run.Next()
				if !ok {
					break
				}
				if e.Kind == step.Sorted {
					Expect(s.State()).To(Equal(session.Sorting))
				}
				events = append(events, e)
			}
			Expect(s.State()).To(Equal(session.Idle))

			Expect(countKind(events, step.Sorted)).To(Equal(1), name)
			Expect(events[len(events)-1].Kind).To(Equal(step.Sorted), name)
			Expect(s.Values()).To(Equal([]int{1, 2, 4, 7, 8, 9}), name)
		}
	})

	DescribeTable("degenerate arrays produce only Sorted",
		func(values []int) {
			for _, name := range s.Algorithms() {
				Expect(s.SetArray(values)).To(Succeed())
				run, err := s.Begin(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(drain(run)).To(Equal([]step.Event{step.SortedAll()}), name)
			}
		},
		Entry("empty", []int{}),
		Entry("single", []int{7}),
	)

	It("plays merge sort as a single render", func() {
		Expect(s.SetArray([]int{4, 2, 1, 3})).To(Succeed())
		Expect(s.Play(context.Background(), "merge")).To(Succeed())
		Expect(rec.Events()).To(Equal([]step.Event{step.RenderAll(), step.SortedAll()}))
		Expect(s.Values()).To(Equal([]int{1, 2, 3, 4}))
	})

	It("logs whether the run left the array in order", func() {
		var buf bytes.Buffer
		logged := session.New(
			session.WithLogger(logging.New(&buf, log.InfoLevel)),
			session.WithSleep(step.NoSleep),
		)

		Expect(logged.SetArray([]int{3, 1, 2})).To(Succeed())
		Expect(logged.Play(context.Background(), "insertion")).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("in_order=true"))

		buf.Reset()
		Expect(logged.SetArray([]int{3, 2, 1})).To(Succeed())
		run, err := logged.Begin("bubble")
		Expect(err).NotTo(HaveOccurred())
		run.Close()
		Expect(buf.String()).To(ContainSubstring("in_order=false"))
	})

	It("runs Start in the background until Wait returns", func() {
		_, err := s.Generate()
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Start(context.Background(), "quick")).To(Succeed())
		s.Wait()

		Expect(s.State()).To(Equal(session.Idle))
		Expect(rec.Count(step.Sorted)).To(Equal(1))
		Expect(s.Values()).To(Equal(sortedCopy(s.Values())))
	})

	It("reads the speed at every delay", func() {
		var (
			paced  *session.Session
			delays []time.Duration
		)
		paced = session.New(
			session.WithSpeed(1),
			session.WithSleep(func(ctx context.Context, d time.Duration) error {
				delays = append(delays, d)
				paced.SetSpeed(4)
				return nil
			}),
		)
		Expect(paced.SetArray([]int{2, 1})).To(Succeed())
		Expect(paced.Play(context.Background(), "bubble")).To(Succeed())

		// compare(0,1) and swap(0,1) are paced; reset and sorted are not.
		Expect(delays).To(Equal([]time.Duration{100 * time.Millisecond, 25 * time.Millisecond}))
	})

	It("abandons a background run when its context ends", func() {
		slow := session.New(session.WithSleep(step.Sleep), session.WithSpeed(step.MinSpeed))
		Expect(slow.SetArray([]int{3, 2, 1})).To(Succeed())

		ctx, cancel := context.WithCancel(context.Background())
		Expect(slow.Start(ctx, "bubble")).To(Succeed())
		cancel()

		done := make(chan struct{})
		go func() {
			slow.Wait()
			close(done)
		}()
		Eventually(done).Should(BeClosed())
		Expect(slow.State()).To(Equal(session.Idle))
	})
})

func sortedCopy(values []int) []int {
	a := array.New(values)
	for range sorting.Insertion(a) {
	}
	return a.Snapshot()
}
