package dto

// FileInfoResponse describes one workbook available in a data directory.
type FileInfoResponse struct {
	Name    string `json:"name"`
	Label   string `json:"label"` // sales: period "YYYY-MM"; inventory: snapshot "YYYY/MM/DD"
	ModTime string `json:"mod_time"`
}

type FileListResponse struct {
	Data []FileInfoResponse `json:"data"`
}

// UploadResponse is returned by POST /v1/files/sales and /v1/files/inventory.
type UploadResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Rows  int    `json:"rows"`
}
