package fields

// UpdateGammaPz applies the closed-form slice relations
//
//	gamma = (1 + pr^2 + a^2 + (1+psi)^2) / (2(1+psi))
//	pz    = (1 + pr^2 + a^2 - (1+psi)^2) / (2(1+psi))
//
// to the particles in [lo, hi). The relations are singular as psi -> -1;
// that onset is handled by the freeze step of the driver, not here.
// Each particle is independent, so callers may split the range.
func UpdateGammaPz(pr, a2, psi, gamma, pz []float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		onePsi := 1 + psi[i]
		num := 1 + pr[i]*pr[i] + a2[i]
		gamma[i] = (num + onePsi*onePsi) / (2 * onePsi)
		pz[i] = (num - onePsi*onePsi) / (2 * onePsi)
	}
}
