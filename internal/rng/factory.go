package rng

// Factory один Source на раунд, все значения исхода берутся из него
type Factory interface {
	ForRound(roundID string) Source
}

type systemFactory struct{}

// NewSystemFactory все раунды делят глобальный генератор
func NewSystemFactory() Factory {
	return systemFactory{}
}

func (systemFactory) ForRound(string) Source {
	return NewSystem()
}

// HMACFactory поток раунда задаётся его id
type HMACFactory struct {
	serverSeed string
}

func NewHMACFactory(serverSeed string) *HMACFactory {
	if serverSeed == "" {
		serverSeed = GenerateSeed()
	}
	return &HMACFactory{serverSeed: serverSeed}
}

func (f *HMACFactory) ForRound(roundID string) Source {
	return NewHMAC(f.serverSeed, roundID)
}

// Commitment хэш серверного сида, публикуется до игры
func (f *HMACFactory) Commitment() string {
	return Commitment(f.serverSeed)
}

// Static всегда один и тот же источник, для тестов
type Static struct {
	Src Source
}

func (s Static) ForRound(string) Source {
	return s.Src
}
