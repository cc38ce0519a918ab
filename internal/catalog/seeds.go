package catalog

// DefaultSeeds is the built-in list of majors grouped by the streams that
// usually lead to them. Majors without streams are open to every stream.
var DefaultSeeds = []Seed{
	{Name: "Teknik Informatika", Streams: []string{"science"}, Skills: []string{"Programming", "Matematika", "Logika"}, Prospects: "Sangat Tinggi"},
	{Name: "Kedokteran", Streams: []string{"science"}, Skills: []string{"Biologi", "Kimia", "Analisis"}, Prospects: "Tinggi"},
	{Name: "Teknik Elektro", Streams: []string{"science"}, Skills: []string{"Fisika", "Matematika", "Problem Solving"}, Prospects: "Tinggi"},
	{Name: "Farmasi", Streams: []string{"science"}, Skills: []string{"Kimia", "Biologi", "Ketelitian"}, Prospects: "Tinggi"},
	{Name: "Teknik Mesin", Streams: []string{"science"}, Skills: []string{"Fisika", "Matematika", "Mekanika"}, Prospects: "Tinggi"},
	{Name: "Arsitektur", Streams: []string{"science"}, Skills: []string{"Menggambar", "Matematika", "Kreativitas"}, Prospects: "Tinggi"},
	{Name: "Manajemen", Streams: []string{"social-studies"}, Skills: []string{"Komunikasi", "Analisis", "Kepemimpinan"}, Prospects: "Tinggi"},
	{Name: "Akuntansi", Streams: []string{"social-studies"}, Skills: []string{"Matematika", "Ketelitian", "Analisis"}, Prospects: "Tinggi"},
	{Name: "Ilmu Komunikasi", Streams: []string{"social-studies"}, Skills: []string{"Kreativitas", "Komunikasi", "Writing"}, Prospects: "Sedang"},
	{Name: "Psikologi", Streams: []string{"social-studies"}, Skills: []string{"Empati", "Analisis", "Komunikasi"}, Prospects: "Tinggi"},
	{Name: "Ilmu Hukum", Streams: []string{"social-studies"}, Skills: []string{"Argumentasi", "Membaca", "Analisis"}, Prospects: "Tinggi"},
	{Name: "Sastra Inggris", Streams: []string{"language"}, Skills: []string{"Bahasa", "Analisis", "Writing"}, Prospects: "Sedang"},
	{Name: "Sastra Indonesia", Streams: []string{"language"}, Skills: []string{"Bahasa", "Kreativitas", "Analisis"}, Prospects: "Sedang"},
	{Name: "Penerjemahan", Streams: []string{"language"}, Skills: []string{"Bahasa", "Ketelitian", "Komunikasi"}, Prospects: "Tinggi"},
	{Name: "Desain Komunikasi Visual", Skills: []string{"Menggambar", "Kreativitas", "Software Desain"}, Prospects: "Tinggi"},
}
