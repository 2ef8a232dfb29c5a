package variant

// jigsawPatterns is the fixed partition library. Each pattern is one
// digit-label per cell, one string per row; every label covers exactly N
// contiguous cells and every pattern admits a full solution. Generation
// picks one uniformly at random.
var jigsawPatterns = map[int][][]string{
	6: {
		{
			"004111",
			"004111",
			"004222",
			"444222",
			"555333",
			"555333",
		},
		{
			"220044",
			"200044",
			"211034",
			"211334",
			"211333",
			"555555",
		},
		{
			"554444",
			"555344",
			"053332",
			"003322",
			"000112",
			"111122",
		},
		{
			"222233",
			"112203",
			"110003",
			"110053",
			"444453",
			"445555",
		},
	},
	9: {
		{
			"555500888",
			"555000188",
			"525001188",
			"222001188",
			"222331144",
			"272331144",
			"777336444",
			"777366664",
			"773366664",
		},
		{
			"555226000",
			"522266000",
			"552266600",
			"554226660",
			"154444777",
			"114444777",
			"111338787",
			"113338887",
			"133338888",
		},
		{
			"880006666",
			"888006611",
			"888006661",
			"873300111",
			"773333112",
			"777333212",
			"747422222",
			"744455525",
			"444455555",
		},
		{
			"542222233",
			"544422233",
			"544888233",
			"544888833",
			"554776883",
			"557776111",
			"577766611",
			"007006611",
			"000006611",
		},
	},
}
