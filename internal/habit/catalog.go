// Package habit holds the static catalog of daily, weekly and emergency
// amalan. The table is reference data: it is never created, mutated or
// deleted at runtime, and progress documents refer to entries by ID only.
package habit

// Category groups habits by the moment of the day they belong to.
type Category string

const (
	CategoryPagiDiniHari Category = "PAGI DINI HARI – PONDASI REZEKI & KEPUTUSAN"
	CategorySubuh        Category = "SUBUH – PEMBUKA TRAFFIC & PELUANG"
	CategorySedekahPagi  Category = "SEDEKAH PAGI – NIAT TRAFFIC & CLOSING"
	CategoryDhuha        Category = "SHALAT DHUHA – REZEKI AKTIF"
	CategoryKerjaDigital Category = "MULAI KERJA DIGITAL"
	CategoryZuhur        Category = "SETELAH ZUHUR – PENJAGA KONSISTENSI"
	CategorySore         Category = "SORE – PENGUNCI STABILITAS"
	CategoryMalam        Category = "MALAM – SCALE & BARAKAH"
	CategoryMingguan     Category = "AMALAN MINGGUAN"
	CategoryEmergency    Category = "KONDISI DARURAT"
)

// Prayer is the dua attached to a habit.
type Prayer struct {
	Arabic      string `json:"arabic"`
	Latin       string `json:"latin,omitempty"`
	Translation string `json:"translation"`
	Context     string `json:"context,omitempty"`
}

// Habit is one predefined task with a point value. Emergency habits carry
// zero points: they are logged, not scored.
type Habit struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Prayer      *Prayer  `json:"prayer,omitempty"`
	Points      int      `json:"points"`
}

// Daily is the scored daily checklist.
var Daily = []Habit{
	{
		ID:          "pagi-0",
		Category:    CategoryPagiDiniHari,
		Title:       "Shalat Tahajud (2-8 Rakaat)",
		Description: "Pondasi ketenangan, kejernihan hati & ketajaman insting bisnis",
		Points:      20,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ لَكَ الْحَمْدُ أَنْتَ نُورُ السَّمَاوَاتِ وَالأَرْضِ، وَلَكَ الْحَمْدُ أَنْتَ قَيَّامُ السَّمَاوَاتِ وَالأَرْضِ",
			Latin:       "Allāhumma lakal-ḥamdu anta nūrus-samāwāti wal-arḍi, wa lakal-ḥamdu anta qayyāmus-samāwāti wal-arḍ.",
			Translation: "Ya Allah, bagi-Mu segala puji. Engkau cahaya langit dan bumi. Bagi-Mu segala puji, Engkau yang menegakkan langit dan bumi.",
			Context:     "Doa pembuka Tahajud - Nabi SAW membaca ini saat memulai shalat malam",
		},
	},
	{
		ID:          "pagi-1",
		Category:    CategoryPagiDiniHari,
		Title:       "Istighfar 100x",
		Description: "Pembersih penghalang rezeki & penghapus dosa-dosa kecil",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "أَسْتَغْفِرُ اللهَ الْعَظِيمَ الَّذِي لَا إِلَهَ إِلَّا هُوَ الْحَيُّ الْقَيُّومُ وَأَتُوبُ إِلَيْهِ",
			Latin:       "Astaghfirullāhal-'aẓīm alladhī lā ilāha illā huwal-ḥayyul-qayyūm wa atūbu ilayh.",
			Translation: "Aku memohon ampun kepada Allah Yang Maha Agung, yang tidak ada Tuhan selain Dia, Yang Maha Hidup lagi Maha Berdiri Sendiri, dan aku bertaubat kepada-Nya.",
			Context:     "Sayyidul Istighfar - Istighfar terbaik yang diajarkan Rasulullah",
		},
	},
	{
		ID:          "pagi-2",
		Category:    CategoryPagiDiniHari,
		Title:       "Niat Usaha Berkah",
		Description: "Memulai hari dengan niat lillahi ta'ala dalam bekerja",
		Points:      5,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ إِنِّي أَسْأَلُكَ عِلْمًا نَافِعًا، وَرِزْقًا طَيِّبًا، وَعَمَلًا مُتَقَبَّلًا",
			Latin:       "Allāhumma innī as'aluka 'ilman nāfi'an, wa rizqan ṭayyiban, wa 'amalan mutaqabbalan.",
			Translation: "Ya Allah, aku memohon kepada-Mu ilmu yang bermanfaat, rezeki yang baik, dan amal yang diterima.",
			Context:     "Baca setelah shalat Subuh - Doa pembuka keberkahan hari",
		},
	},
	{
		ID:          "subuh-1",
		Category:    CategorySubuh,
		Title:       "Shalat Subuh Tepat Waktu",
		Description: "Kunci keberkahan hari - jangan pernah tunda!",
		Points:      15,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ بَارِكْ لِأُمَّتِي فِي بُكُورِهَا",
			Latin:       "Allāhumma bārik li ummatī fī bukūrihā.",
			Translation: "Ya Allah, berkahilah umatku di waktu pagi mereka.",
			Context:     "Hadits: \"Waktu pagi adalah waktu diberkahi untuk umatku\"",
		},
	},
	{
		ID:          "subuh-2",
		Category:    CategorySubuh,
		Title:       "Dzikir Pagi",
		Description: "Perlindungan & pembuka pintu rezeki sepanjang hari",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "بِسْمِ اللَّهِ الَّذِي لَا يَضُرُّ مَعَ اسْمِهِ شَيْءٌ فِي الْأَرْضِ وَلَا فِي السَّمَاءِ وَهُوَ السَّمِيعُ الْعَلِيمُ",
			Latin:       "Bismillāhil-ladhī lā yaḍurru ma'asmihi shay'un fil-arḍi wa lā fis-samā'i wa huwas-samī'ul-'alīm.",
			Translation: "Dengan menyebut nama Allah yang dengan nama-Nya tidak ada sesuatu pun yang membahayakan di bumi maupun di langit, dan Dia Maha Mendengar lagi Maha Mengetahui.",
			Context:     "Baca 3x pagi & petang - Perlindungan dari segala bahaya",
		},
	},
	{
		ID:          "subuh-3",
		Category:    CategorySubuh,
		Title:       "Doa Pembuka Rezeki Digital",
		Description: "Doa khusus untuk marketer & pebisnis online",
		Points:      5,
		Prayer: &Prayer{
			Arabic:      "يَا فَتَّاحُ، اِفْتَحْ لَنَا أَبْوَابَ الرِّزْقِ، وَبَارِكْ لَنَا فِيمَا رَزَقْتَنَا، وَاجْعَلْهُ رِزْقاً حَلَالاً طَيِّباً",
			Latin:       "Yā Fattāḥ, iftaḥ lanā abwābar rizq, wabārik lanā fīmā razaqtanā, waj'alhu rizqan ḥalālan ṭayyiban.",
			Translation: "Wahai Dzat Yang Maha Pembuka, bukakanlah bagi kami pintu-pintu rezeki, berkahilah apa yang Engkau anugerahkan, dan jadikanlah ia rezeki yang halal lagi baik.",
			Context:     "Baca sebelum buka laptop/HP untuk kerja",
		},
	},
	{
		ID:          "sedekah-1",
		Category:    CategorySedekahPagi,
		Title:       "Sedekah Sebelum Kerja",
		Description: "Sedekah sebelum buka ads / posting / follow-up - minimal Rp5.000",
		Points:      15,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ أَخْلِفْ عَلَى مُنْفِقٍ خَلَفًا، وَأَعْطِ مُمْسِكًا تَلَفًا",
			Latin:       "Allāhumma akhlif 'alā munfiqin khalafan, wa a'ṭi mumsikan talafan.",
			Translation: "Ya Allah, berikanlah ganti kepada orang yang berinfak, dan berikanlah kehancuran kepada orang yang menahan hartanya.",
			Context:     "Niatkan: \"Ya Allah, ganti sedekah ini dengan traffic, conversion, dan rezeki yang Engkau ridai.\"",
		},
	},
	{
		ID:          "dhuha-1",
		Category:    CategoryDhuha,
		Title:       "Shalat Dhuha (2-4 Rakaat)",
		Description: "Waktu terbaik: 15 menit setelah matahari terbit - jam 11 siang",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ إِنْ كَانَ رِزْقِي فِي السَّمَاءِ فَأَنْزِلْهُ، وَإِنْ كَانَ فِي الْأَرْضِ فَأَخْرِجْهُ، وَإِنْ كَانَ بَعِيداً فَقَرِّبْهُ، وَإِنْ كَانَ قَرِيباً فَيَسِّرْهُ، وَإِنْ كَانَ قَلِيلاً فَكَثِّرْهُ، وَإِنْ كَانَ كَثِيراً فَبَارِكْ لِي فِيهِ",
			Latin:       "Allāhumma in kāna rizqī fis-samā'i fa anzilhu, wa in kāna fil-arḍi fa akhrijhu, wa in kāna ba'īdan fa qarribhu, wa in kāna qarīban fa yassirhu, wa in kāna qalīlan fa kaththirhu, wa in kāna kathīran fa bārik lī fīh.",
			Translation: "Ya Allah, jika rezekiku ada di langit maka turunkanlah, jika ada di dalam bumi maka keluarkanlah, jika jauh maka dekatkanlah, jika dekat maka mudahkanlah, jika sedikit maka perbanyaklah, dan jika banyak maka berkahilah.",
			Context:     "Doa setelah shalat Dhuha - Doa pembuka 360 pintu rezeki",
		},
	},
	{
		ID:          "kerja-1",
		Category:    CategoryKerjaDigital,
		Title:       "Bismillah & Shalawat 3x",
		Description: "Sebelum setting ads / bikin konten / kirim email",
		Points:      5,
		Prayer: &Prayer{
			Arabic:      "بِسْمِ اللَّهِ تَوَكَّلْتُ عَلَى اللَّهِ، لَا حَوْلَ وَلَا قُوَّةَ إِلَّا بِاللَّهِ",
			Latin:       "Bismillāhi tawakkaltu 'alallāh, lā ḥawla wa lā quwwata illā billāh.",
			Translation: "Dengan menyebut nama Allah, aku bertawakal kepada Allah. Tidak ada daya dan kekuatan kecuali dengan pertolongan Allah.",
			Context:     "Baca sebelum memulai pekerjaan apapun",
		},
	},
	{
		ID:          "kerja-2",
		Category:    CategoryKerjaDigital,
		Title:       "Prinsip Solusi Bukan Manipulasi",
		Description: "Hindari clickbait menipu, testimoni palsu, overclaim produk",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ اجْعَلْنِي صَادِقاً فِي قَوْلِي وَفِعْلِي",
			Latin:       "Allāhummaj'alnī ṣādiqan fī qawlī wa fi'lī.",
			Translation: "Ya Allah, jadikanlah aku orang yang jujur dalam ucapan dan perbuatanku.",
			Context:     "Checklist: Apakah iklan/kontenku sudah jujur? Apakah aku bangga jika Allah melihatnya?",
		},
	},
	{
		ID:          "kerja-3",
		Category:    CategoryKerjaDigital,
		Title:       "Hasbiyallāhu (Closing/Follow-up)",
		Description: "Niat membantu customer, bukan memaksa untuk beli",
		Points:      5,
		Prayer: &Prayer{
			Arabic:      "حَسْبِيَ اللَّهُ لَا إِلَهَ إِلَّا هُوَ عَلَيْهِ تَوَكَّلْتُ وَهُوَ رَبُّ الْعَرْشِ الْعَظِيمِ",
			Latin:       "Ḥasbiyallāhu lā ilāha illā huwa 'alayhi tawakkaltu wa huwa rabbul-'arshil-'aẓīm.",
			Translation: "Cukuplah Allah bagiku. Tidak ada Tuhan selain Dia. Kepada-Nya aku bertawakal dan Dia adalah Tuhan Arsy yang agung.",
			Context:     "Baca 7x setelah follow-up - Lepaskan hasil kepada Allah",
		},
	},
	{
		ID:          "zuhur-1",
		Category:    CategoryZuhur,
		Title:       "Shalat Zuhur Tepat Waktu",
		Description: "Jangan tunda karena meeting atau deadline!",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "رَبَّنَا آتِنَا فِي الدُّنْيَا حَسَنَةً وَفِي الآخِرَةِ حَسَنَةً وَقِنَا عَذَابَ النَّارِ",
			Latin:       "Rabbanā ātinā fid-dunyā ḥasanah, wa fil-ākhirati ḥasanah, wa qinā 'adhāban-nār.",
			Translation: "Ya Tuhan kami, berilah kami kebaikan di dunia dan kebaikan di akhirat, dan lindungilah kami dari azab neraka.",
			Context:     "Doa yang paling sering dibaca Rasulullah SAW",
		},
	},
	{
		ID:          "zuhur-2",
		Category:    CategoryZuhur,
		Title:       "Istighfar 33x & Shalawat 10x",
		Description: "Reset pikiran di tengah hari kerja yang padat",
		Points:      5,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ صَلِّ عَلَى مُحَمَّدٍ وَعَلَى آلِ مُحَمَّدٍ",
			Latin:       "Allāhumma ṣalli 'alā Muḥammadin wa 'alā āli Muḥammad.",
			Translation: "Ya Allah, limpahkanlah rahmat kepada Nabi Muhammad dan keluarga beliau.",
			Context:     "Shalawat pembuka kemudahan dalam urusan",
		},
	},
	{
		ID:          "sore-1",
		Category:    CategorySore,
		Title:       "Shalat Asar Tepat Waktu",
		Description: "Jangan sampai terlewat - ini shalat yang sangat dijaga!",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "مَنْ تَرَكَ صَلَاةَ الْعَصْرِ فَقَدْ حَبِطَ عَمَلُهُ",
			Latin:       "Man taraka ṣalātal-'aṣri faqad ḥabiṭa 'amaluh.",
			Translation: "Barangsiapa meninggalkan shalat Asar, maka sungguh amalnya terhapus.",
			Context:     "Hadits Bukhari - Peringatan keras tentang shalat Asar",
		},
	},
	{
		ID:          "sore-2",
		Category:    CategorySore,
		Title:       "Dzikir Petang",
		Description: "Perlindungan malam & kunci keberkahan hingga esok",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "أَمْسَيْنَا وَأَمْسَى الْمُلْكُ لِلَّهِ، وَالْحَمْدُ لِلَّهِ، لَا إِلَهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ",
			Latin:       "Amsaynā wa amsal-mulku lillāh, wal-ḥamdu lillāh, lā ilāha illallāhu waḥdahu lā sharīka lah.",
			Translation: "Kami telah memasuki waktu petang dan kerajaan hanya milik Allah. Segala puji bagi Allah. Tidak ada Tuhan selain Allah saja, tidak ada sekutu bagi-Nya.",
			Context:     "Dzikir petang - Baca sebelum Maghrib",
		},
	},
	{
		ID:          "sore-3",
		Category:    CategorySore,
		Title:       "Ikhlas Atas Hasil Ads/Sales",
		Description: "Lepaskan emosi dari boncos / CTR turun / deal gagal",
		Points:      5,
		Prayer: &Prayer{
			Arabic:      "قَدَّرَ اللَّهُ وَمَا شَاءَ فَعَلَ",
			Latin:       "Qaddarallāhu wa mā shā'a fa'al.",
			Translation: "Allah telah mentakdirkan dan apa yang Dia kehendaki pasti terjadi.",
			Context:     "Hadits Muslim - Sikap menghadapi kegagalan dengan tawakal",
		},
	},
	{
		ID:          "malam-1",
		Category:    CategoryMalam,
		Title:       "Baca Al-Qur'an",
		Description: "Al-Waqi'ah (rezeki), Al-Mulk (perlindungan), atau min. 2 halaman",
		Points:      15,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ اجْعَلِ الْقُرْآنَ رَبِيعَ قَلْبِي، وَنُورَ صَدْرِي، وَجَلَاءَ حُزْنِي، وَذَهَابَ هَمِّي",
			Latin:       "Allāhummaj'alil-Qur'āna rabī'a qalbī, wa nūra ṣadrī, wa jalā'a ḥuznī, wa dhahāba hammī.",
			Translation: "Ya Allah, jadikanlah Al-Qur'an sebagai penyejuk hatiku, cahaya dadaku, penghilang kesedihanku, dan pelepas kegelisahanku.",
			Context:     "Baca sebelum membaca Al-Qur'an",
		},
	},
	{
		ID:          "malam-2",
		Category:    CategoryMalam,
		Title:       "Istighfar Penutup 100x",
		Description: "Penghapus dosa harian & pembuka keberkahan esok",
		Points:      5,
		Prayer: &Prayer{
			Arabic:      "أَسْتَغْفِرُ اللَّهَ وَأَتُوبُ إِلَيْهِ",
			Latin:       "Astaghfirullāha wa atūbu ilayh.",
			Translation: "Aku memohon ampun kepada Allah dan bertaubat kepada-Nya.",
			Context:     "Nabi SAW beristighfar 100x setiap hari - HR. Muslim",
		},
	},
	{
		ID:          "malam-3",
		Category:    CategoryMalam,
		Title:       "Doa Penutup Hari",
		Description: "Menyerahkan semua urusan & hasil hari ini kepada Allah",
		Points:      5,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ اكْفِنِي بِحَلَالِكَ عَنْ حَرَامِكَ، وَأَغْنِنِي بِفَضْلِكَ عَمَّنْ سِوَاكَ",
			Latin:       "Allāhumma ikfinī biḥalālika 'an ḥarāmik, wa aghninī bifaḍlika 'amman siwāk.",
			Translation: "Ya Allah, cukupkanlah aku dengan rezeki-Mu yang halal hingga aku terhindar dari yang haram, dan kayakanlah aku dengan anugerah-Mu hingga aku tidak bergantung kepada selain-Mu.",
			Context:     "Doa agar terhindar dari rezeki haram dan hutang",
		},
	},
}

// Weekly holds the amalan mingguan. They are not part of the daily score.
var Weekly = []Habit{
	{
		ID:          "jumat-1",
		Category:    CategoryMingguan,
		Title:       "Sedekah Jumat Lebih Besar",
		Description: "Minimal 2x lipat dari sedekah harian biasa",
		Points:      20,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ اجْعَلْهَا صَدَقَةً جَارِيَةً",
			Latin:       "Allāhummaj'alhā ṣadaqatan jāriyah.",
			Translation: "Ya Allah, jadikanlah ini sedekah yang terus mengalir pahalanya.",
			Context:     "Hari Jumat adalah hari terbaik untuk bersedekah",
		},
	},
	{
		ID:          "jumat-2",
		Category:    CategoryMingguan,
		Title:       "Shalawat 100x (Jumat)",
		Description: "Perbanyak shalawat di hari sayyidul ayyam",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ صَلِّ وَسَلِّمْ عَلَى نَبِيِّنَا مُحَمَّدٍ",
			Latin:       "Allāhumma ṣalli wa sallim 'alā nabiyyinā Muḥammad.",
			Translation: "Ya Allah, limpahkanlah rahmat dan keselamatan kepada Nabi kita Muhammad.",
			Context:     "Hadits: \"Perbanyaklah shalawat kepadaku pada hari Jumat\"",
		},
	},
	{
		ID:          "minggu-1",
		Category:    CategoryMingguan,
		Title:       "Silaturahmi Bisnis",
		Description: "Hubungi minimal 1 partner/client untuk menyambung silaturahmi",
		Points:      10,
		Prayer: &Prayer{
			Arabic:      "مَنْ سَرَّهُ أَنْ يُبْسَطَ لَهُ فِي رِزْقِهِ، وَأَنْ يُنْسَأَ لَهُ فِي أَثَرِهِ، فَلْيَصِلْ رَحِمَهُ",
			Latin:       "Man sarrahu an yubsaṭa lahu fī rizqihi, wa an yunsa'a lahu fī atharihi, falyaṣil raḥimah.",
			Translation: "Barangsiapa ingin dilapangkan rezekinya dan dipanjangkan umurnya, hendaklah ia menyambung silaturahmi.",
			Context:     "Hadits Bukhari - Silaturahmi pembuka rezeki",
		},
	},
	{
		ID:          "minggu-2",
		Category:    CategoryMingguan,
		Title:       "Berbagi Ilmu Gratis",
		Description: "Share tips/insight marketing di media sosial tanpa minta imbalan",
		Points:      15,
		Prayer: &Prayer{
			Arabic:      "اللَّهُمَّ انْفَعْنِي بِمَا عَلَّمْتَنِي، وَعَلِّمْنِي مَا يَنْفَعُنِي، وَزِدْنِي عِلْمًا",
			Latin:       "Allāhummanfa'nī bimā 'allamtanī, wa 'allimnī mā yanfa'unī, wa zidnī 'ilmā.",
			Translation: "Ya Allah, berilah aku manfaat dari apa yang Engkau ajarkan kepadaku, ajarkanlah aku apa yang bermanfaat bagiku, dan tambahkanlah ilmuku.",
			Context:     "Ilmu yang bermanfaat adalah sedekah jariyah",
		},
	},
}

// Emergency lists the zero-point reflections for hard days.
var Emergency = []Habit{
	{
		ID:          "emergency-1",
		Category:    CategoryEmergency,
		Title:       "Shalat Sunnah 2 Rakaat",
		Description: "Saat ads boncos, akun suspend, atau deal gagal - serahkan ke Allah",
		Points:      0,
		Prayer: &Prayer{
			Arabic:      "وَاسْتَعِينُوا بِالصَّبْرِ وَالصَّلَاةِ",
			Latin:       "Wasta'īnū biṣ-ṣabri waṣ-ṣalāh.",
			Translation: "Dan mohonlah pertolongan dengan sabar dan shalat.",
			Context:     "QS. Al-Baqarah: 45 - Solusi saat menghadapi masalah berat",
		},
	},
	{
		ID:          "emergency-2",
		Category:    CategoryEmergency,
		Title:       "Doa Nabi Yunus 100x",
		Description: "Doa keluar dari kesulitan - terbukti ampuh!",
		Points:      0,
		Prayer: &Prayer{
			Arabic:      "لَا إِلَهَ إِلَّا أَنْتَ سُبْحَانَكَ إِنِّي كُنْتُ مِنَ الظَّالِمِينَ",
			Latin:       "Lā ilāha illā anta, subḥānaka innī kuntu minaẓ-ẓālimīn.",
			Translation: "Tidak ada Tuhan selain Engkau. Maha Suci Engkau, sesungguhnya aku termasuk orang-orang yang zhalim.",
			Context:     "Doa Nabi Yunus AS di perut ikan - pembuka jalan keluar",
		},
	},
	{
		ID:          "emergency-3",
		Category:    CategoryEmergency,
		Title:       "Sedekah Darurat",
		Description: "Bersedekah saat kesulitan - percepat pembuka solusi",
		Points:      0,
		Prayer: &Prayer{
			Arabic:      "إِنَّ الصَّدَقَةَ لَتُطْفِئُ غَضَبَ الرَّبِّ وَتَدْفَعُ مِيتَةَ السُّوءِ",
			Latin:       "Innaṣ-ṣadaqata latuṭfi'u ghaḍabar-Rabbi wa tadfa'u mītatas-sū'.",
			Translation: "Sesungguhnya sedekah itu memadamkan murka Rabb dan menolak kematian yang buruk.",
			Context:     "Hadits Tirmidzi - Sedekah saat kesulitan mendatangkan pertolongan",
		},
	},
	{
		ID:          "emergency-4",
		Category:    CategoryEmergency,
		Title:       "Hasbunallah 7x",
		Description: "Penyerahan total saat semua sudah diusahakan",
		Points:      0,
		Prayer: &Prayer{
			Arabic:      "حَسْبُنَا اللَّهُ وَنِعْمَ الْوَكِيلُ",
			Latin:       "Ḥasbunallāhu wa ni'mal-wakīl.",
			Translation: "Cukuplah Allah bagi kami dan Dia adalah sebaik-baik pelindung.",
			Context:     "Doa Nabi Ibrahim AS saat dilempar ke api - penyerahan total",
		},
	},
}

// All returns the daily, weekly and emergency habits in one slice.
func All() []Habit {
	out := make([]Habit, 0, len(Daily)+len(Weekly)+len(Emergency))
	out = append(out, Daily...)
	out = append(out, Weekly...)
	out = append(out, Emergency...)
	return out
}

// ByID looks a habit up across the whole catalog.
func ByID(id string) (Habit, bool) {
	for _, h := range All() {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// DailyPoints maps habit id to point value for the scored daily list.
func DailyPoints() map[string]int {
	points := make(map[string]int, len(Daily))
	for _, h := range Daily {
		points[h.ID] = h.Points
	}
	return points
}

// TotalDailyPoints is the denominator of the completion percentage.
func TotalDailyPoints() int {
	total := 0
	for _, h := range Daily {
		total += h.Points
	}
	return total
}
