package blochviz

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTracker(t *testing.T) {
	Convey("Given a tracker with the default cap", t, func() {
		tracker := NewTracker()

		Convey("It should start empty", func() {
			So(tracker.CountOperations(), ShouldEqual, 0)
			So(tracker.AtCapacity(), ShouldBeFalse)
			So(tracker.Text(), ShouldEqual, "")
		})

		Convey("When recording labels", func() {
			text, err := tracker.Record("x")
			So(err, ShouldBeNil)
			So(text, ShouldEqual, "x")

			text, _ = tracker.Record("Rx")
			So(text, ShouldEqual, "xRx")

			text, _ = tracker.Record("SD")
			So(text, ShouldEqual, "xRxSD")

			Convey("Two-character labels should count as one operation", func() {
				So(tracker.CountOperations(), ShouldEqual, 3)
			})

			Convey("The ledger should keep order and sequence", func() {
				history := tracker.History()
				So(len(history), ShouldEqual, 3)
				So(history[1].Label, ShouldEqual, "Rx")
				So(history[2].Sequence, ShouldEqual, 2)
			})
		})

		Convey("When mixing rotation and single-character gates", func() {
			labels := []string{"Rx", "H", "SD", "Ry", "z", "TD", "Rz", "S", "T", "y"}

			for i, label := range labels[:9] {
				tracker.Record(label)
				So(tracker.CountOperations(), ShouldEqual, i+1)
				So(tracker.AtCapacity(), ShouldBeFalse)
			}

			tracker.Record(labels[9])

			Convey("It should reach capacity at exactly ten operations", func() {
				So(tracker.CountOperations(), ShouldEqual, 10)
				So(tracker.AtCapacity(), ShouldBeTrue)
				So(tracker.Remaining(), ShouldEqual, 0)
			})

			Convey("Clear should drop back below capacity", func() {
				tracker.Clear()
				So(tracker.AtCapacity(), ShouldBeFalse)
				So(tracker.CountOperations(), ShouldEqual, 0)
				So(tracker.Remaining(), ShouldEqual, 10)
			})
		})

		Convey("When recording past the cap", func() {
			var refused int
			for i := 0; i < 12; i++ {
				if _, err := tracker.Record("x"); err != nil {
					So(errors.Is(err, ErrAtCapacity), ShouldBeTrue)
					refused++
				}
			}

			Convey("The count should stop at ten", func() {
				So(tracker.CountOperations(), ShouldEqual, 10)
				So(refused, ShouldEqual, 2)
				So(tracker.Text(), ShouldEqual, "xxxxxxxxxx")
			})

			Convey("Refused labels should not reach OnRecord", func() {
				called := false
				tracker.OnRecord = func(string) { called = true }

				text, err := tracker.Record("H")
				So(errors.Is(err, ErrAtCapacity), ShouldBeTrue)
				So(text, ShouldEqual, "xxxxxxxxxx")
				So(called, ShouldBeFalse)
			})
		})

		Convey("A label containing a D should still count once", func() {
			tracker.Record("DD")
			So(tracker.CountOperations(), ShouldEqual, 1)
		})

		Convey("OnRecord should receive the display text", func() {
			var seen []string
			tracker.OnRecord = func(text string) {
				seen = append(seen, text)
			}

			tracker.Record("H")
			tracker.Record("T")
			So(seen, ShouldResemble, []string{"H", "HT"})
		})
	})

	Convey("Given a tracker with a custom cap", t, func() {
		tracker := NewTracker(WithMaxOperations(2))
		tracker.Record("x")
		So(tracker.AtCapacity(), ShouldBeFalse)
		tracker.Record("y")
		So(tracker.AtCapacity(), ShouldBeTrue)
	})
}
