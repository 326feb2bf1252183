package sampler

import (
	"math"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ordosx/percentage/pkg/config"
	"github.com/ordosx/percentage/pkg/powerinfo"
	"github.com/ordosx/percentage/pkg/updates"
)

// Sampler polls a battery source and sends samples to the tray.
type Sampler struct {
	source Source
	out    *updates.Channel
	conf   config.Config

	// last is the last sample sent per device, only touched by the
	// goroutine running Run or Poll.
	last map[int]powerinfo.Sample
}

// New returns a Sampler reading from source and writing to out. The interval,
// device policy and dedup policy are read from conf before every poll.
func New(source Source, out *updates.Channel, conf config.Config) *Sampler {
	return &Sampler{
		source: source,
		out:    out,
		conf:   conf,
		last:   make(map[int]powerinfo.Sample),
	}
}

// Run polls forever and returns once the receiving side of the channel is
// closed. Battery queries block, so Run keeps its goroutine on one OS thread
// for the whole loop. Run closes the sending side of the channel on return.
func (s *Sampler) Run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer s.out.CloseSend()

	logrus.Debug("battery sampler starts")

	for {
		if err := s.Poll(); err != nil {
			logrus.Debugf("battery sampler stops: %v", err)
			return
		}

		timer := time.NewTimer(s.conf.SampleInterval())
		select {
		case <-timer.C:
		case <-s.out.Done():
			timer.Stop()
			logrus.Debug("battery sampler stops: receiver closed")
			return
		}
	}
}

// Poll reads the source once and sends the resulting samples. A failing or
// empty source is not an error; the only error is updates.ErrReceiverClosed.
func (s *Sampler) Poll() error {
	devices, err := s.source.Devices()
	if err != nil {
		logrus.Debugf("failed to read batteries, skipping this poll: %v", err)
		return nil
	}
	if len(devices) == 0 {
		logrus.Trace("no batteries found, skipping this poll")
		return nil
	}

	emitOnChangeOnly := s.conf.EmitOnChangeOnly()
	for _, sample := range Resolve(devices, s.conf.DevicePolicy()) {
		if last, ok := s.last[sample.Device]; ok && emitOnChangeOnly && last.SameReading(sample) {
			logrus.WithFields(sampleFields(sample)).Trace("battery unchanged")
			continue
		}

		logrus.WithFields(sampleFields(sample)).Debug("battery sample")

		if err := s.out.Send(sample); err != nil {
			return err
		}
		s.last[sample.Device] = sample
	}

	return nil
}

// Resolve turns the devices of one poll into samples according to policy.
// Devices whose charge is not a finite number are skipped.
func Resolve(devices []powerinfo.Device, policy config.DevicePolicy) []powerinfo.Sample {
	var samples []powerinfo.Sample
	for _, d := range devices {
		sample, ok := NewSample(d)
		if !ok {
			continue
		}
		samples = append(samples, sample)
		if policy != config.DevicePolicyAll {
			break
		}
	}
	return samples
}

// NewSample rounds the state of charge of d to a percentage in [0, 100].
func NewSample(d powerinfo.Device) (powerinfo.Sample, bool) {
	if math.IsNaN(d.Fraction) || math.IsInf(d.Fraction, 0) {
		return powerinfo.Sample{}, false
	}

	percentage := int(math.Round(d.Fraction * 100))
	// Some batteries report a charge slightly above their full capacity.
	percentage = min(max(percentage, 0), 100)

	return powerinfo.Sample{
		Percentage: percentage,
		State:      d.State,
		Device:     d.Index,
	}, true
}

func sampleFields(s powerinfo.Sample) logrus.Fields {
	return logrus.Fields{
		"device":     s.Device,
		"percentage": s.Percentage,
		"state":      s.State.String(),
	}
}
