package identity

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
	"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
	"Benjamin", "Samantha", "Samuel", "Katherine", "Raymond", "Christine", "Gregory", "Debra",
	"Frank", "Rachel", "Alexander", "Carolyn", "Patrick", "Janet", "Jack", "Catherine",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales",
}

var streetNames = []string{
	"Oak", "Maple", "Cedar", "Pine", "Elm", "Washington", "Lake", "Hill",
	"Sunset", "Park", "Main", "Ridge", "River", "Spring", "Highland", "Forest",
	"Meadow", "Walnut", "Chestnut", "Willow", "Franklin", "Lincoln", "Jefferson",
	"Madison", "Jackson", "Church", "Mill", "Broad", "Center", "Union",
}

var streetSuffixes = []string{
	"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Way", "Ct", "Pl", "Ter",
}

var cities = []string{
	"Springfield", "Franklin", "Clinton", "Greenville", "Bristol", "Fairview",
	"Salem", "Madison", "Georgetown", "Arlington", "Ashland", "Burlington",
	"Manchester", "Oxford", "Clayton", "Jackson", "Milton", "Auburn",
	"Dayton", "Lexington", "Milford", "Riverside", "Cleveland", "Dover",
	"Hudson", "Kingston", "Newport", "Oakland", "Winchester", "Centerville",
}

var stateAbbrs = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "Corp", "Co", "Ltd", "Industries", "Labs",
	"Holdings", "Partners", "Solutions", "Enterprises",
}

var phraseAdjectives = []string{
	"Adaptive", "Advanced", "Automated", "Balanced", "Centralized", "Compatible",
	"Configurable", "Customizable", "Digitized", "Distributed", "Enhanced",
	"Ergonomic", "Expanded", "Flexible", "Integrated", "Intuitive", "Modular",
	"Optimized", "Polarized", "Programmable", "Reactive", "Robust", "Seamless",
	"Streamlined", "Synergistic", "Universal", "Versatile", "Virtual",
}

var phraseDescriptors = []string{
	"24-hour", "analyzing", "asynchronous", "bandwidth-monitored", "bi-directional",
	"client-driven", "coherent", "composite", "contextually-based", "dynamic",
	"encompassing", "executive", "full-range", "global", "heuristic", "high-level",
	"holistic", "impactful", "interactive", "logistical", "mission-critical",
	"multi-tasking", "national", "needs-based", "next-generation", "real-time",
	"scalable", "systematic", "uniform", "value-added", "zero-defect",
}

var phraseNouns = []string{
	"ability", "access", "algorithm", "alliance", "architecture", "benchmark",
	"capability", "capacity", "circuit", "concept", "core", "database",
	"framework", "function", "hardware", "hub", "infrastructure", "initiative",
	"installation", "instruction-set", "interface", "knowledgebase", "matrix",
	"methodology", "middleware", "model", "moratorium", "neural-net", "paradigm",
	"portal", "pricing-structure", "process-improvement", "productivity",
	"project", "protocol", "software", "solution", "standardization",
	"strategy", "structure", "support", "synergy", "system-engine", "throughput",
	"time-frame", "toolset", "utilization", "website", "workforce",
}
