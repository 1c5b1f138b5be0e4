package periods

// Section header keyword sets. A line that contains one of these
// (case-insensitively) opens or closes a section during segmentation.
var (
	educationHeaders = []string{
		"education",
		"academic background",
		"academic history",
		"qualifications",
		"degrees",
	}

	workHeaders = []string{
		"work experience",
		"professional experience",
		"experience",
		"employment",
		"work history",
		"career",
	}

	neutralHeaders = []string{
		"skills",
		"projects",
		"certifications",
		"summary",
		"objective",
		"languages",
		"interests",
		"references",
		"awards",
		"publications",
		"volunteering",
	}
)

// Broader topical keywords used for opportunistic capture in headerless
// resumes: a line containing one of these still yields a candidate block.
var (
	educationTopical = []string{
		"university",
		"college",
		"institute",
		"bachelor",
		"master",
		"phd",
		"doctorate",
		"diploma",
		"gpa",
		"graduated",
	}

	workTopical = []string{
		"company",
		"inc",
		"corp",
		"ltd",
		"llc",
		"engineer",
		"developer",
		"manager",
		"analyst",
		"consultant",
		"intern",
	}
)

// Name/label extraction keyword lists used by the period builder.
var (
	institutionKeywords = []string{
		"university",
		"college",
		"institute",
		"school",
		"academy",
	}

	degreeKeywords = []string{
		"bachelor",
		"master",
		"phd",
		"doctorate",
		"diploma",
		"certificate",
		"associate",
		"mba",
		"bsc",
		"msc",
		"b.s",
		"m.s",
		"b.a",
		"m.a",
		"degree",
	}

	companySuffixes = []string{
		"inc",
		"corp",
		"ltd",
		"llc",
		"company",
		"gmbh",
	}

	positionKeywords = []string{
		"engineer",
		"developer",
		"manager",
		"analyst",
		"consultant",
		"designer",
		"architect",
		"director",
		"lead",
		"intern",
		"specialist",
		"administrator",
		"coordinator",
		"scientist",
		"officer",
	}
)
