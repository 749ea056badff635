package restore

import (
	"fmt"

	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/fft2"
)

// InverseOperator returns the thresholded pseudo-inverse of the kernel
// spectrum h.
//
// With T = epsilon * max|H|, every bin gets Q = conj(H)/|H|² where |H| > T and
// Q = 1/T elsewhere. The result is always finite.
func InverseOperator(h *fft2.Spectrum, epsilon float64) (*fft2.Spectrum, error) {
	if err := validateEpsilon(epsilon); err != nil {
		return nil, err
	}

	mag := h.Magnitude()
	peak := maxOf(mag)
	if peak == 0 {
		return nil, ErrZeroSpectrum
	}

	threshold := epsilon * peak
	power := h.Power()
	q := fft2.NewSpectrum(h.Rows, h.Cols)

	for i, m := range mag {
		if m > threshold {
			q.Re[i] = h.Re[i] / power[i]
			q.Im[i] = -h.Im[i] / power[i]
			continue
		}
		q.Re[i] = 1 / threshold
	}
	return q, nil
}

// WienerOperator returns Q = conj(H) / (|H|² + 1/snr²) for every bin of h.
func WienerOperator(h *fft2.Spectrum, snr float64) (*fft2.Spectrum, error) {
	if err := validateSNR(snr); err != nil {
		return nil, err
	}
	if h.MaxMagnitude() == 0 {
		return nil, ErrZeroSpectrum
	}

	nsr := 1 / (snr * snr)
	power := h.Power()
	q := fft2.NewSpectrum(h.Rows, h.Cols)

	for i, p := range power {
		den := p + nsr
		// Only possible when nsr underflows and H is zero, so Q is zero too.
		if den == 0 {
			continue
		}
		q.Re[i] = h.Re[i] / den
		q.Im[i] = -h.Im[i] / den
	}
	return q, nil
}

func validateEpsilon(epsilon float64) error {
	if !core.IsFinite(epsilon) || epsilon <= 0 || epsilon > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidEpsilon, epsilon)
	}
	return nil
}

func validateSNR(snr float64) error {
	if !core.IsFinite(snr) || snr <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSNR, snr)
	}
	return nil
}

func maxOf(x []float64) float64 {
	var peak float64
	for _, v := range x {
		if v > peak {
			peak = v
		}
	}
	return peak
}
