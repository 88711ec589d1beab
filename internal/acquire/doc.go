// Package acquire turns a source locator into a decoded audio file on disk.
// Remote URLs are downloaded and decoded through yt-dlp, local media files
// have their audio track extracted with ffmpeg.
package acquire
