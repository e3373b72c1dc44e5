package filesize

// Capacities of common storage media.
var (
	Floppy = MustParse("1474 KiB")
	CD     = MustParse("700 MB")
	DVD5   = MustParse("4.38 GiB")
	DVD9   = MustParse("7.92 GiB")
	ZIP    = MustParse("100 MB")

	DVD   = DVD5
	DVD10 = DVD5.Mul(2)
	DVD14 = DVD9.Add(DVD5)
	DVD18 = DVD9.Mul(2)
)
