package wait

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Condition", func() {
	It("is satisfied when the check returns true", func() {
		pred := Condition(func() bool { return true })

		v, ok, err := pred()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(v).To(BeTrue())
	})

	It("is not satisfied while the check returns false", func() {
		pred := Condition(func() bool { return false })

		_, ok, err := pred()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("CountReached", func() {
	It("stays unsatisfied below the target", func() {
		n := 0
		pred := CountReached(func() int { return n }, 3)

		for ; n < 3; n++ {
			v, ok, err := pred()
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(v).To(Equal(n))
		}
	})

	It("is satisfied at the target and beyond", func() {
		n := 3
		pred := CountReached(func() int { return n }, 3)

		v, ok, _ := pred()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(3))

		n = 10
		v, ok, _ = pred()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(10))
	})
})

var _ = Describe("EventOccurred", func() {
	type event struct {
		kind    string
		payload string
	}

	It("matches the first event of the wanted kind", func() {
		events := []event{
			{kind: "created", payload: "a"},
			{kind: "deleted", payload: "b"},
			{kind: "deleted", payload: "c"},
		}
		pred := EventOccurred(
			func() []event { return events },
			func(e event) bool { return e.kind == "deleted" },
		)

		got, ok, err := pred()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(got.payload).To(Equal("b"))
	})

	It("stays unsatisfied while no event matches", func() {
		pred := EventOccurred(
			func() []event { return []event{{kind: "created"}} },
			func(e event) bool { return e.kind == "deleted" },
		)

		_, ok, err := pred()
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("sees events appended between evaluations", func() {
		var (
			mut    sync.Mutex
			events []event
		)
		pred := EventOccurred(
			func() []event {
				mut.Lock()
				defer mut.Unlock()
				return append([]event(nil), events...)
			},
			func(e event) bool { return e.kind == "done" },
		)

		_, ok, _ := pred()
		Expect(ok).To(BeFalse())

		mut.Lock()
		events = append(events, event{kind: "done", payload: "x"})
		mut.Unlock()

		got, ok, _ := pred()
		Expect(ok).To(BeTrue())
		Expect(got.payload).To(Equal("x"))
	})

	Context("E2E", func() {
		It("drives a full wait to satisfaction", func() {
			var (
				mut    sync.Mutex
				events []event
			)
			go func() {
				time.Sleep(5 * time.Millisecond)
				mut.Lock()
				defer mut.Unlock()
				events = append(events, event{kind: "job-finished", payload: "ok"})
			}()

			res := For(context.Background(), Request[event]{
				Predicate: EventOccurred(
					func() []event {
						mut.Lock()
						defer mut.Unlock()
						return append([]event(nil), events...)
					},
					func(e event) bool { return e.kind == "job-finished" },
				),
				Description:  "job-finished event recorded",
				Timeout:      5 * time.Second,
				PollInterval: time.Millisecond,
			})

			Expect(res.Outcome).To(Equal(Satisfied))
			Expect(res.Value.payload).To(Equal("ok"))
		})
	})
})
