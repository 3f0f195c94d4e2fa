package domain

var (
	VOCABULARY_LIST_SETS_SUCCESS  = "Berhasil mendapatkan daftar set kosakata"
	VOCABULARY_LIST_SETS_FAILED   = "Gagal mendapatkan daftar set kosakata"
	VOCABULARY_LIST_WORDS_SUCCESS = "Berhasil mendapatkan daftar kata"
	VOCABULARY_LIST_WORDS_FAILED  = "Gagal mendapatkan daftar kata"
	FAVORITE_LIST_SUCCESS         = "Berhasil mendapatkan daftar favorit"
	FAVORITE_LIST_FAILED          = "Gagal mendapatkan daftar favorit"
	FAVORITE_TOGGLE_SUCCESS       = "Berhasil mengubah favorit"
	FAVORITE_TOGGLE_FAILED        = "Gagal mengubah favorit"
)
