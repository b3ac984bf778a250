package marcaje

// GrossHours calcula las horas brutas entre entrada y salida. Si falta o no
// parsea alguno de los dos timestamps devuelve 0; un lapso negativo (salida
// antes de entrada) colapsa a 0, nunca devuelve negativos.
func GrossHours(entrada, salida string) float64 {
	e, okE := ParseTimestamp(entrada)
	s, okS := ParseTimestamp(salida)
	if !okE || !okS {
		return 0
	}
	horas := float64(s.UnixMilli()-e.UnixMilli()) / 3.6e6
	if horas < 0 {
		return 0
	}
	return horas
}

// NetHours descuenta el lapso de refrigerio de las horas brutas. Solo
// descuenta cuando ambos extremos del refrigerio existen y parsean; un
// refrigerio negativo cuenta como 0.
func NetHours(entrada, salida, refrigerio, terminoRefrigerio string) float64 {
	total := GrossHours(entrada, salida)

	ri, okR := ParseTimestamp(refrigerio)
	rf, okT := ParseTimestamp(terminoRefrigerio)
	if !okR || !okT {
		return total
	}

	descanso := float64(rf.UnixMilli()-ri.UnixMilli()) / 3.6e6
	if descanso < 0 {
		descanso = 0
	}
	neto := total - descanso
	if neto < 0 {
		return 0
	}
	return neto
}
