package domain

var (
	QUIZ_START_SUCCESS   = "Berhasil memulai quiz"
	QUIZ_START_FAILED    = "Gagal memulai quiz"
	QUIZ_NO_WORDS        = "Tidak ada kata untuk quiz ini"
	QUIZ_GET_SUCCESS     = "Berhasil mendapatkan data quiz"
	QUIZ_GET_FAILED      = "Gagal mendapatkan data quiz"
	QUIZ_ANSWER_SUCCESS  = "Berhasil submit jawaban"
	QUIZ_ANSWER_FAILED   = "Gagal submit jawaban"
	QUIZ_ADVANCE_SUCCESS = "Berhasil lanjut ke soal berikutnya"
	QUIZ_ADVANCE_FAILED  = "Gagal lanjut ke soal berikutnya"
	QUIZ_KEY_SUCCESS     = "Berhasil memproses tombol"
	QUIZ_KEY_FAILED      = "Gagal memproses tombol"
	QUIZ_HINT_SUCCESS    = "Berhasil generate petunjuk"
	QUIZ_HINT_FAILED     = "Gagal generate petunjuk"
	QUIZ_RESET_SUCCESS   = "Berhasil reset quiz"
	QUIZ_RESET_FAILED    = "Gagal reset quiz"
)
